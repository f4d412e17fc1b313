package session

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/doeshing/typecmd/internal/domain"
)

func (s *Session) show(c domain.ShowCommand) (domain.Result, error) {
	switch c.Topic {
	case domain.ShowVersion:
		return domain.Info(fmt.Sprintf("%s Version %s", domain.ProductName, s.version)), nil
	case domain.ShowVariables:
		return s.listVariables(), nil
	case domain.ShowHistory:
		return s.listHistory(c.Limit), nil
	case domain.ShowLicense:
		return domain.Info("LICENSE: " + domain.License), nil
	default:
		return domain.Info(helpText(s.version, s.history.Count())), nil
	}
}

func (s *Session) clear(c domain.ClearCommand) (domain.Result, error) {
	if c.Target == domain.ClearHistory {
		s.clearHistory()
		return domain.Success("cleared all history"), nil
	}
	return s.clearVariables(), nil
}

func (s *Session) historyOp(c domain.HistoryCommand) (domain.Result, error) {
	switch c.Op {
	case domain.HistorySearch:
		return s.searchHistory(c.Keyword), nil
	case domain.HistoryClear:
		s.clearHistory()
		return domain.Success("history cleared"), nil
	default:
		return s.listHistory(c.Limit), nil
	}
}

// clearHistory always succeeds; a backing store that cannot be removed is
// only worth a warning.
func (s *Session) clearHistory() {
	if err := s.history.Clear(); err != nil {
		s.logger.Warn("history store not cleared", map[string]interface{}{"error": err.Error()})
		s.console.Print(domain.MessageWarning, err.Error())
	}
}

func (s *Session) listHistory(limit int) domain.Result {
	entries := s.history.Entries(limit)
	if len(entries) == 0 {
		return domain.Info("history is empty")
	}

	scope := "all"
	if limit != domain.NoLimit {
		scope = fmt.Sprintf("last %d", limit)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "history (%s):\n", scope)
	for i := len(entries) - 1; i >= 0; i-- {
		writeEntry(&b, entries[i])
	}
	b.WriteString("\nuse !<id> to run a history command")
	return domain.Info(b.String())
}

func (s *Session) searchHistory(keyword string) domain.Result {
	found := s.history.Search(keyword)
	if len(found) == 0 {
		return domain.Info(fmt.Sprintf("no history commands contain %q", keyword))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "results for %q (%d):\n", keyword, len(found))
	for i, e := range found {
		if i == domain.MaxSearchResults {
			break
		}
		writeEntry(&b, e)
	}
	return domain.Info(strings.TrimRight(b.String(), "\n"))
}

func writeEntry(b *strings.Builder, e domain.HistoryEntry) {
	fmt.Fprintf(b, "%4d  [%s]  %s\n", e.ID, e.Timestamp.Format(domain.ClockFormat), e.Command)
}

func (s *Session) replayLast(ctx context.Context) (domain.Result, error) {
	entry, ok := s.history.Last()
	if !ok {
		return domain.Result{}, domain.NewInvalidHistoryError("no history commands to run")
	}
	return s.run(ctx, entry)
}

// replay resolves ref as "-n" (n-th most recent) or as a literal entry id.
func (s *Session) replay(ctx context.Context, ref string) (domain.Result, error) {
	entry, err := s.lookup(ref)
	if err != nil {
		return domain.Result{}, err
	}
	return s.run(ctx, entry)
}

func (s *Session) lookup(ref string) (domain.HistoryEntry, error) {
	if strings.HasPrefix(ref, "-") {
		offset, err := strconv.ParseUint(ref[1:], 10, 31)
		if err != nil {
			return domain.HistoryEntry{}, domain.NewInvalidHistoryError("invalid offset: %s", ref)
		}
		entry, ok := s.history.FromEnd(int(offset))
		if !ok {
			return domain.HistoryEntry{}, domain.NewInvalidHistoryError("offset out of range (%d entries)", s.history.Count())
		}
		return entry, nil
	}

	id, err := strconv.ParseUint(ref, 10, 64)
	if err != nil {
		return domain.HistoryEntry{}, domain.NewInvalidHistoryError("invalid history id: %s", ref)
	}
	entry, ok := s.history.ByID(id)
	if !ok {
		return domain.HistoryEntry{}, domain.NewInvalidHistoryError("history entry #%d does not exist", id)
	}
	return entry, nil
}

// run re-enters the pipeline with a stored command. A stored command that
// is itself a replay is refused so replays never nest.
func (s *Session) run(ctx context.Context, entry domain.HistoryEntry) (domain.Result, error) {
	cmd, err := s.parse(entry.Command)
	if err == nil && domain.IsReplay(cmd) {
		return domain.Result{}, domain.NewInvalidHistoryError("history entry #%d is itself a replay: %s", entry.ID, entry.Command)
	}
	s.logger.Debug("replay", map[string]interface{}{"id": entry.ID, "command": entry.Command})
	s.console.Print(domain.MessageNeutral, fmt.Sprintf("executing history #%d: %s", entry.ID, entry.Command))
	if err != nil {
		return domain.Result{}, err
	}
	return s.dispatchChecked(ctx, cmd)
}
