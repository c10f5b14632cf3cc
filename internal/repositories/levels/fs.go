package levels

import (
	"bytes"
	"context"
	"io/fs"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// FSConfig configures a file backed level repository
type FSConfig struct {
	// FS holds level files at its root, e.g. os.DirFS(dir) or the
	// embedded assets
	FS     fs.FS
	Logger *slog.Logger
}

// Validate validates the FSConfig
func (cfg *FSConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.FS == nil {
		return errors.InvalidArgument("fs cannot be nil")
	}
	return nil
}

type fsRepository struct {
	fsys   fs.FS
	logger *slog.Logger
}

// NewFS creates a repository reading levelN.yaml files from an fs.FS
func NewFS(cfg *FSConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &fsRepository{fsys: cfg.FS, logger: logger}, nil
}

func (r *fsRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.Number < 1 {
		return nil, errors.InvalidArgumentf("level number must be at least 1, got %d", input.Number)
	}

	name := FileName(input.Number)
	raw, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFoundf("level %d not found", input.Number)
		}
		return nil, errors.Wrapf(err, "failed to read %s", name)
	}

	data, err := Decode(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "level file %s", name).WithMeta("file", name)
	}
	if data.Number != input.Number {
		r.logger.Warn("level file number mismatch, using file name",
			"file", name,
			"declared", data.Number,
		)
		data.Number = input.Number
	}

	return &GetOutput{Data: data}, nil
}

func (r *fsRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	entries, err := fs.ReadDir(r.fsys, ".")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list levels")
	}

	var numbers []int
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if n, ok := NumberFromFile(e.Name()); ok {
			numbers = append(numbers, n)
		}
	}
	slices.Sort(numbers)

	return &ListOutput{Numbers: numbers}, nil
}

// Decode parses a YAML level document. Unknown fields are rejected.
func Decode(raw []byte) (*dungeon.LevelData, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var data dungeon.LevelData
	if err := dec.Decode(&data); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed level yaml")
	}
	return &data, nil
}

// NumberFromFile extracts N from a levelN.yaml path
func NumberFromFile(path string) (int, bool) {
	base := path
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	digits, ok := strings.CutPrefix(base, "level")
	if !ok {
		return 0, false
	}
	digits, ok = strings.CutSuffix(digits, ".yaml")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
