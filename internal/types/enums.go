package types

type ActionType string

const (
	ActionInit      ActionType = "Navigation/INIT"
	ActionBack      ActionType = "Navigation/BACK"
	ActionNavigate  ActionType = "Navigation/NAVIGATE"
	ActionSetParams ActionType = "Navigation/SET_PARAMS"
)

type BackBehavior string

const (
	BackBehaviorInitialRoute BackBehavior = "initialRoute"
	BackBehaviorNone         BackBehavior = "none"
)
