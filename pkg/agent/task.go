// Package agent implements the orchestrator and the specialist agents it
// spawns: scout, analyst, strategist, scribe, verifier, operator, hunter.
package agent

// Task is one unit of work handed to an agent. Concrete task types carry
// the typed inputs their agent needs.
type Task interface {
	// Type is the task kind used for usage attribution and logging.
	Type() string
	// User is the owning user, for budget enforcement.
	User() string
}

// ScoutTask asks the scout to scan for market signals about tracked
// competitors and account entities.
type ScoutTask struct {
	UserID      string
	Competitors []string
	Entities    []string
}

func (t ScoutTask) Type() string { return "signal_scan" }
func (t ScoutTask) User() string { return t.UserID }

// AnalystTask asks the analyst for a research brief on an account.
type AnalystTask struct {
	UserID  string
	Account string
	// Context is prior knowledge about the account, free-form.
	Context string
}

func (t AnalystTask) Type() string { return "account_research" }
func (t AnalystTask) User() string { return t.UserID }

// StrategistTask asks the strategist for an engagement plan.
type StrategistTask struct {
	UserID string
	// Brief is the analyst's research output.
	Brief string
	Goal  string
}

func (t StrategistTask) Type() string { return "engagement_strategy" }
func (t StrategistTask) User() string { return t.UserID }

// ScribeTask asks the scribe to draft an outbound message in the user's
// writing style.
type ScribeTask struct {
	UserID    string
	Recipient string
	Purpose   string
	// StyleFingerprint is the stored writing-style profile; empty means
	// a neutral professional voice.
	StyleFingerprint map[string]interface{}
	// Material is source content the draft should draw on.
	Material string
}

func (t ScribeTask) Type() string { return "draft_message" }
func (t ScribeTask) User() string { return t.UserID }

// VerifierTask asks the verifier to check a claim against evidence.
type VerifierTask struct {
	UserID   string
	Claim    string
	Evidence string
}

func (t VerifierTask) Type() string { return "verify_claim" }
func (t VerifierTask) User() string { return t.UserID }

// OperatorTask asks the operator to execute an action on a connected
// third-party integration.
type OperatorTask struct {
	UserID      string
	Integration string
	Action      string
	Params      map[string]interface{}
}

func (t OperatorTask) Type() string { return "execute_action" }
func (t OperatorTask) User() string { return t.UserID }

// HunterTask asks the hunter to discover new leads matching a profile.
type HunterTask struct {
	UserID string
	// Profile describes the ideal customer, free-form.
	Profile   string
	Territory string
}

func (t HunterTask) Type() string { return "lead_discovery" }
func (t HunterTask) User() string { return t.UserID }
