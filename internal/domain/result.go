package domain

// MessageKind is the semantic category of a console message. Styling is the
// console's business; the core only picks the category.
type MessageKind string

const (
	MessageError   MessageKind = "error"
	MessageSuccess MessageKind = "success"
	MessageInfo    MessageKind = "info"
	MessageWarning MessageKind = "warning"
	MessageNeutral MessageKind = "neutral"
)

// Result is what a successfully executed command reports back.
type Result struct {
	Message string
	Kind    MessageKind
}

// Success builds a success result.
func Success(msg string) Result { return Result{Message: msg, Kind: MessageSuccess} }

// Info builds an informational result.
func Info(msg string) Result { return Result{Message: msg, Kind: MessageInfo} }
