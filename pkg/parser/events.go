package parser

// Kind labels for the closed set of recognized event shapes. Classifier
// output is not limited to this set: unrecognized type strings are
// preserved verbatim, they just never validate.
const (
	KindAgentInit       = "AGENT_INIT"
	KindAgentCreated    = "AGENT_CREATED"
	KindAction          = "ACTION"
	KindTransaction     = "TRANSACTION"
	KindRentalInitiated = "RENTAL_INITIATED"
	KindRentalCompleted = "RENTAL_COMPLETED"
	KindComms           = "COMMS"
	KindUnknown         = "unknown"
)

// Event is a validated, typed event ready for projection.
type Event interface {
	EventKind() string
}

// AgentInit is an AGENT_INIT or AGENT_CREATED event.
type AgentInit struct {
	Kind             string // AGENT_INIT or AGENT_CREATED
	AgentID          string
	AgentName        string
	Platform         string
	Version          string // optional
	OperatingAccount string // optional
	Timestamp        int64
	Metadata         map[string]any // optional
}

func (e AgentInit) EventKind() string { return e.Kind }

// Action is a tool invocation recorded by an agent.
type Action struct {
	AgentID      string
	SessionKey   string
	Action       map[string]any // {tool, parameters, result}
	Reasoning    *string
	PreviousHash *string
	Timestamp    int64
}

func (Action) EventKind() string { return KindAction }

// Transaction is an on-ledger transaction recorded by an agent.
type Transaction struct {
	AgentID         string
	TransactionType string
	TransactionID   string
	Details         string
	Reasoning       *string
	PreviousHash    *string
	Timestamp       int64
}

func (Transaction) EventKind() string { return KindTransaction }

// RentalInitiated opens a rental lifecycle.
type RentalInitiated struct {
	AgentID       string
	RentalID      string
	Renter        string
	EscrowAccount string
	StakeUSD      float64
	BufferUSD     float64
	Timestamp     int64
}

func (RentalInitiated) EventKind() string { return KindRentalInitiated }

// RentalCompleted closes a rental lifecycle with the settlement split.
type RentalCompleted struct {
	RentalID     string
	TotalCostUSD float64
	Settlement   map[string]float64 // owner, creator, network, treasury
	Timestamp    int64
}

func (RentalCompleted) EventKind() string { return KindRentalCompleted }

// Comms is an inter-agent message. Its timestamp is a sender-reported
// string, preserved as given.
type Comms struct {
	From      string
	To        *string
	Text      string
	Timestamp string
	Metadata  map[string]any
}

func (Comms) EventKind() string { return KindComms }
