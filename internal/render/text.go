package render

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/numenera/internal/game/dice"
	"github.com/cory-johannsen/numenera/internal/game/item"
	"github.com/cory-johannsen/numenera/internal/game/salvage"
)

// Text renders values as indented, human-readable lines.
type Text struct {
	color bool
}

// NewText returns a Text renderer; color enables ANSI styling.
func NewText(color bool) Text {
	return Text{color: color}
}

func (t Text) paint(color, s string) string {
	if !t.color {
		return s
	}
	return Colorize(color, s)
}

// Salvage renders one salvage result.
//
// Precondition: r.Reward must be non-nil.
func (t Text) Salvage(r salvage.Result) string {
	var b strings.Builder
	b.WriteString(t.paint(Bold, "Random salvage result:") + "\n")
	fmt.Fprintf(&b, "  shins:  %s\n", t.paint(Yellow, fmt.Sprint(r.Shins)))
	fmt.Fprintf(&b, "  parts:  %s\n", t.paint(Yellow, fmt.Sprint(r.Parts)))

	switch reward := r.Reward.(type) {
	case salvage.NoReward:
		fmt.Fprintf(&b, "  reward: %s\n", t.paint(Dim, "none"))
	case salvage.OddityReward:
		b.WriteString("  reward: oddity\n")
		b.WriteString("    - " + t.oddity(reward.Oddity) + "\n")
	case salvage.IotumReward:
		fmt.Fprintf(&b, "  reward: %d iotum\n", len(reward.Iotum))
		for _, i := range reward.Iotum {
			b.WriteString("    - " + t.iotum(i) + "\n")
		}
	case salvage.CypherReward:
		fmt.Fprintf(&b, "  reward: %d cyphers\n", len(reward.Cyphers))
		for _, c := range reward.Cyphers {
			b.WriteString("    - " + t.device(c.Name, c.Level, c.Source, c.Page, Cyan) + "\n")
		}
	case salvage.ArtifactReward:
		a := reward.Artifact
		b.WriteString("  reward: artifact\n")
		b.WriteString("    - " + t.device(a.Name, a.Level, a.Source, a.Page, Magenta) + "\n")
	}
	return b.String()
}

// Loot renders a loot draw grouped by kind. Empty groups are omitted.
func (t Text) Loot(l item.Loot) string {
	var b strings.Builder
	if len(l.Cyphers) > 0 {
		b.WriteString(t.paint(Bold, "Cyphers:") + "\n")
		for _, c := range l.Cyphers {
			b.WriteString("  - " + t.device(c.Name, c.Level, c.Source, c.Page, Cyan) + "\n")
		}
	}
	if len(l.Artifacts) > 0 {
		b.WriteString(t.paint(Bold, "Artifacts:") + "\n")
		for _, a := range l.Artifacts {
			b.WriteString("  - " + t.device(a.Name, a.Level, a.Source, a.Page, Magenta) + "\n")
		}
	}
	if len(l.Oddities) > 0 {
		b.WriteString(t.paint(Bold, "Oddities:") + "\n")
		for _, o := range l.Oddities {
			b.WriteString("  - " + t.oddity(o) + "\n")
		}
	}
	return b.String()
}

// Rolls renders one audit line per dice roll.
//
// Precondition: every roll has a non-empty Expression.
func (t Text) Rolls(rolls []dice.RollResult) string {
	var b strings.Builder
	for _, r := range rolls {
		fmt.Fprintf(&b, "%s %s %v %+d = %s\n",
			t.paint(Bold, r.Expression), t.paint(BrightBlack, "→"),
			r.Dice, r.Modifier, t.paint(Green, fmt.Sprint(r.Total())))
	}
	return b.String()
}

func (t Text) iotum(i item.Iotum) string {
	return fmt.Sprintf("%d × %s (level %d, value %d)",
		i.UnitsSalvaged, t.paint(Green, i.Name), i.Level, i.Value)
}

func (t Text) oddity(o item.Oddity) string {
	return fmt.Sprintf("%s (entry %d)%s", t.paint(BrightBlue, o.Description), o.Entry, t.reference(o.Source, o.Page))
}

func (t Text) device(name string, level int, source string, page int, color string) string {
	return fmt.Sprintf("%s (level %d)%s", t.paint(color, name), level, t.reference(source, page))
}

func (t Text) reference(source string, page int) string {
	switch {
	case source == "":
		return ""
	case page == 0:
		return t.paint(Dim, " ["+source+"]")
	default:
		return t.paint(Dim, fmt.Sprintf(" [%s p. %d]", source, page))
	}
}
