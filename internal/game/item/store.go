package item

import "context"

// Store gives raw access to the four salvage tables. Implementations wrap
// every failure, including "no matching row", with fault.ErrStorage.
type Store interface {
	// IotumForRoll returns the iotum row whose roll range contains roll.
	IotumForRoll(ctx context.Context, roll int) (IotumRow, error)
	// RandomOddity returns a uniformly random oddity row.
	RandomOddity(ctx context.Context) (OddityRow, error)
	// RandomCypher returns a uniformly random cypher row.
	RandomCypher(ctx context.Context) (DeviceRow, error)
	// RandomArtifact returns a uniformly random artifact row.
	RandomArtifact(ctx context.Context) (DeviceRow, error)
}
