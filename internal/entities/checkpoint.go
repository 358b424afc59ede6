package entities

// Checkpoint is a named fueling point along the route with its own
// ledger field on FuelRecord. The set is fixed; stations are mapped
// onto checkpoints by the administrator-maintained station map.
type Checkpoint string

const (
	CheckpointYard        Checkpoint = "yard"
	CheckpointKitwe       Checkpoint = "kitwe"
	CheckpointChingola    Checkpoint = "chingola"
	CheckpointKasumbalesa Checkpoint = "kasumbalesa"
	CheckpointLikasi      Checkpoint = "likasi"
	CheckpointFungurume   Checkpoint = "fungurume"
	CheckpointNdolaReturn Checkpoint = "ndola_return"
	CheckpointKapiri      Checkpoint = "kapiri_return"
)

func (c Checkpoint) String() string {
	return string(c)
}

// Checkpoints lists every ledger field in route order, going leg first.
func Checkpoints() []Checkpoint {
	return []Checkpoint{
		CheckpointYard,
		CheckpointKitwe,
		CheckpointChingola,
		CheckpointKasumbalesa,
		CheckpointLikasi,
		CheckpointFungurume,
		CheckpointNdolaReturn,
		CheckpointKapiri,
	}
}

func IsValidCheckpoint(c Checkpoint) bool {
	switch c {
	case CheckpointYard, CheckpointKitwe, CheckpointChingola,
		CheckpointKasumbalesa, CheckpointLikasi, CheckpointFungurume,
		CheckpointNdolaReturn, CheckpointKapiri:
		return true
	default:
		return false
	}
}

// CheckpointDirection tells which leg(s) of the journey a checkpoint
// serves. Shared border checkpoints serve both.
type CheckpointDirection string

const (
	CheckpointGoing     CheckpointDirection = "going"
	CheckpointReturning CheckpointDirection = "returning"
	CheckpointBoth      CheckpointDirection = "both"
)

func (d CheckpointDirection) String() string {
	return string(d)
}
