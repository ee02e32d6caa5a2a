package cursor

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/orgball2608/nitter-relay-telegram-bot/pkg/config"
	apperrors "github.com/orgball2608/nitter-relay-telegram-bot/pkg/errors"
	"github.com/orgball2608/nitter-relay-telegram-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

// File is a Store backed by a flat JSON object on disk. The whole file is
// rewritten on every Save.
type File struct {
	path   string
	state  map[string]string
	logger logger.Logger
}

func NewFile(opts Opts) *File {
	f := &File{
		path:   opts.Config.State.FilePath,
		state:  make(map[string]string),
		logger: opts.Logger.WithComponent("CursorStore"),
	}
	f.load()
	return f
}

var _ Store = (*File)(nil)

// load reads the state file. An absent or unparsable file yields an empty
// mapping: corruption must never abort the run.
func (f *File) load() {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			f.logger.Warn("Failed to read state file, starting empty", "path", f.path, "error", err)
		}
		return
	}

	var state map[string]string
	if err := json.Unmarshal(data, &state); err != nil {
		f.logger.Warn("State file is corrupt, starting empty", "path", f.path, "error", err)
		return
	}
	f.state = state

	f.logger.Info("Loaded cursor state", "path", f.path, "accounts", len(state))
}

func (f *File) Get(username string) (string, bool) {
	id, ok := f.state[username]
	return id, ok
}

func (f *File) Advance(username, id string) {
	next, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		f.logger.Warn("Ignoring non-numeric cursor value", "username", username, "id", id)
		return
	}

	if current, ok := f.state[username]; ok {
		if cur, err := strconv.ParseInt(current, 10, 64); err == nil && next <= cur {
			return
		}
	}
	f.state[username] = id
}

func (f *File) Snapshot() map[string]string {
	out := make(map[string]string, len(f.state))
	for k, v := range f.state {
		out[k] = v
	}
	return out
}

func (f *File) Save() error {
	data, err := json.Marshal(f.state)
	if err != nil {
		return apperrors.Wrap(err, "marshal cursor state")
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return apperrors.Wrap(err, "write state file")
	}

	f.logger.Info("Saved cursor state", "path", f.path, "accounts", len(f.state))
	return nil
}
