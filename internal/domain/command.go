package domain

// Command is the closed set of operations a resolved input line can express.
// Only types declared in this package implement it.
type Command interface {
	// Name returns the canonical command name, used in logs.
	Name() string
	command()
}

// ShowTopic selects what a show command displays.
type ShowTopic string

const (
	ShowHelp      ShowTopic = "help"
	ShowVersion   ShowTopic = "version"
	ShowVariables ShowTopic = "vars"
	ShowHistory   ShowTopic = "history"
	ShowLicense   ShowTopic = "license"
)

// NoLimit marks a history listing without a limit.
const NoLimit = -1

// ClearTarget selects what a clear command empties.
type ClearTarget string

const (
	ClearVariables ClearTarget = "vars"
	ClearHistory   ClearTarget = "history"
)

// HistoryOp selects the history subcommand.
type HistoryOp string

const (
	HistoryList   HistoryOp = "list"
	HistorySearch HistoryOp = "search"
	HistoryClear  HistoryOp = "clear"
)

// ShowCommand displays information. Limit only applies to ShowHistory.
type ShowCommand struct {
	Topic ShowTopic
	Limit int
}

// ExitCommand terminates the process.
type ExitCommand struct {
	Code int
}

// SetCommand assigns a string variable.
type SetCommand struct {
	Variable string
	Value    string
}

// GetCommand reads a string variable.
type GetCommand struct {
	Variable string
}

// CopyCommand copies the string variable Source into Destination.
type CopyCommand struct {
	Destination string
	Source      string
}

// IntSetCommand assigns an integer variable.
type IntSetCommand struct {
	Variable string
	Value    int64
}

// IntGetCommand reads an integer variable.
type IntGetCommand struct {
	Variable string
}

// IntAddCommand adds Delta to an existing integer variable.
type IntAddCommand struct {
	Variable string
	Delta    int64
}

// PrintCommand echoes text.
type PrintCommand struct {
	Text string
}

// PrintIntCommand echoes an integer literal.
type PrintIntCommand struct {
	Value int
}

// ListCommand lists all variables.
type ListCommand struct{}

// DeleteCommand removes a variable.
type DeleteCommand struct {
	Variable string
}

// ClearCommand empties the variable stores or the history.
type ClearCommand struct {
	Target ClearTarget
}

// HistoryCommand lists, searches or clears the history log.
type HistoryCommand struct {
	Op      HistoryOp
	Limit   int
	Keyword string
}

// ReplayLastCommand re-executes the most recent history entry.
type ReplayLastCommand struct{}

// ReplayCommand re-executes a history entry by id ("12") or by offset from
// the most recent entry ("-1").
type ReplayCommand struct {
	Ref string
}

func (ShowCommand) Name() string       { return "show" }
func (ExitCommand) Name() string       { return "exit" }
func (SetCommand) Name() string        { return "set" }
func (GetCommand) Name() string        { return "get" }
func (CopyCommand) Name() string       { return "copy" }
func (IntSetCommand) Name() string     { return "iset" }
func (IntGetCommand) Name() string     { return "iget" }
func (IntAddCommand) Name() string     { return "iadd" }
func (PrintCommand) Name() string      { return "string" }
func (PrintIntCommand) Name() string   { return "int" }
func (ListCommand) Name() string       { return "list" }
func (DeleteCommand) Name() string     { return "rm" }
func (ClearCommand) Name() string      { return "clear" }
func (HistoryCommand) Name() string    { return "history" }
func (ReplayLastCommand) Name() string { return "!!" }
func (ReplayCommand) Name() string     { return "!" }

func (ShowCommand) command()       {}
func (ExitCommand) command()       {}
func (SetCommand) command()        {}
func (GetCommand) command()        {}
func (CopyCommand) command()       {}
func (IntSetCommand) command()     {}
func (IntGetCommand) command()     {}
func (IntAddCommand) command()     {}
func (PrintCommand) command()      {}
func (PrintIntCommand) command()   {}
func (ListCommand) command()       {}
func (DeleteCommand) command()     {}
func (ClearCommand) command()      {}
func (HistoryCommand) command()    {}
func (ReplayLastCommand) command() {}
func (ReplayCommand) command()     {}

// IsReplay reports whether cmd re-executes a history entry.
func IsReplay(cmd Command) bool {
	switch cmd.(type) {
	case ReplayLastCommand, ReplayCommand:
		return true
	}
	return false
}

// IsHistoryMeta reports whether cmd inspects or replays the history log.
// Such commands are never recorded.
func IsHistoryMeta(cmd Command) bool {
	if _, ok := cmd.(HistoryCommand); ok {
		return true
	}
	return IsReplay(cmd)
}
