package session

import (
	"fmt"

	"github.com/doeshing/typecmd/internal/domain"
)

const commandHelp = `commands:
  show                             - show info: show [help|ver|vars|history [n]|license]
  exit    | quit  | q              - exit: exit [code]
  to      | var   | let   | set    - set a variable: set <name> <value>
  get     | which | echo           - read a variable: get <name>
  copy    | cpvar                  - copy a variable: copy <new name> <old name>
  ito     | ivar  | ilet  | iset   - set an integer variable: iset <name> <int>
  iget    | iwhich | iecho         - read an integer variable: iget <name>
  add     | iadd                   - add to an integer variable: iadd <name> <int>
  string  | str   | sprint         - print text: string <text>
  int     | num                    - print a number: int <number>
  list    | ls                     - list all variables
  rm      | del   | unset          - delete a variable: rm <name>
  clear   | cls                    - clear variables or history: clear [vars|history]
  history | hist                   - show history
  version | ver                    - same as show ver
history:
  !!                               - run the last command
  ! n                              - run history entry n
  ! -n                             - run the n-th most recent command
  history | hist n                 - show the last n commands
  history | hist search str        - search history for str
  history | hist clear             - clear history`

func helpText(version string, historyCount int) string {
	return fmt.Sprintf("%s command line simulator\nversion: %s\nhistory: %d commands\n\n%s",
		domain.ProductName, version, historyCount, commandHelp)
}
