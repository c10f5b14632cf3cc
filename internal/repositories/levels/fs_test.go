package levels_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/suite"

	assetlevels "github.com/KirkDiggler/rpg-dungeon/assets/levels"
	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/levels"
)

const testLevelYAML = `number: 1
background: bg.png
rooms:
  - id: 1
    type: spawn
    bounds: {x: 0, y: 0, width: 200, height: 200}
    neighbors: [2]
    spawn: {x: 10, y: 10}
  - id: 2
    type: portal
    bounds: {x: 200, y: 0, width: 200, height: 200}
    portal: {x: 268, y: 68}
`

type FSRepositoryTestSuite struct {
	suite.Suite
	repo levels.Repository
	ctx  context.Context
}

func (s *FSRepositoryTestSuite) SetupTest() {
	fsys := fstest.MapFS{
		"level1.yaml": {Data: []byte(testLevelYAML)},
		"level2.yaml": {Data: []byte("number: 2\nrooms: [\n")},
		"level3.yaml": {Data: []byte("number: 3\nunknown_field: true\n")},
		"level4.yaml": {Data: []byte(testLevelYAML)},
		"notes.txt":   {Data: []byte("not a level")},
	}
	repo, err := levels.NewFS(&levels.FSConfig{FS: fsys})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *FSRepositoryTestSuite) TestNewFS() {
	_, err := levels.NewFS(nil)
	s.Require().Error(err)
	s.Contains(err.Error(), "config cannot be nil")

	_, err = levels.NewFS(&levels.FSConfig{})
	s.Require().Error(err)
	s.Contains(err.Error(), "fs cannot be nil")
}

func (s *FSRepositoryTestSuite) TestGet() {
	s.Run("parses a level", func() {
		out, err := s.repo.Get(s.ctx, levels.GetInput{Number: 1})
		s.Require().NoError(err)
		s.Equal(1, out.Data.Number)
		s.Equal("bg.png", out.Data.Background)
		s.Require().Len(out.Data.Rooms, 2)
		s.Equal("spawn", out.Data.Rooms[0].Type)
		s.Equal([]int{2}, out.Data.Rooms[0].Neighbors)
		s.Require().NotNil(out.Data.Rooms[1].Portal)
		s.Equal(268.0, out.Data.Rooms[1].Portal.X)

		level, err := dungeon.Build(out.Data, nil)
		s.Require().NoError(err)
		s.Len(level.Rooms(), 2)
	})

	s.Run("missing level", func() {
		_, err := s.repo.Get(s.ctx, levels.GetInput{Number: 9})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
	})

	s.Run("malformed yaml", func() {
		_, err := s.repo.Get(s.ctx, levels.GetInput{Number: 2})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Equal("level2.yaml", errors.GetMeta(err)["file"])
	})

	s.Run("unknown fields rejected", func() {
		_, err := s.repo.Get(s.ctx, levels.GetInput{Number: 3})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("file name wins over declared number", func() {
		out, err := s.repo.Get(s.ctx, levels.GetInput{Number: 4})
		s.Require().NoError(err)
		s.Equal(4, out.Data.Number)
	})

	s.Run("number below one", func() {
		_, err := s.repo.Get(s.ctx, levels.GetInput{Number: 0})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *FSRepositoryTestSuite) TestList() {
	out, err := s.repo.List(s.ctx, levels.ListInput{})
	s.Require().NoError(err)
	s.Equal([]int{1, 2, 3, 4}, out.Numbers)
}

func TestFSRepositorySuite(t *testing.T) {
	suite.Run(t, new(FSRepositoryTestSuite))
}

func TestEmbeddedLevelsBuild(t *testing.T) {
	ctx := context.Background()
	repo, err := levels.NewFS(&levels.FSConfig{FS: assetlevels.FS})
	if err != nil {
		t.Fatal(err)
	}

	list, err := repo.List(ctx, levels.ListInput{})
	if err != nil {
		t.Fatal(err)
	}
	if len(list.Numbers) != 3 {
		t.Fatalf("expected 3 shipped levels, got %v", list.Numbers)
	}

	for _, n := range list.Numbers {
		out, err := repo.Get(ctx, levels.GetInput{Number: n})
		if err != nil {
			t.Fatalf("level %d: %v", n, err)
		}
		level, err := dungeon.Build(out.Data, nil)
		if err != nil {
			t.Fatalf("level %d: %v", n, err)
		}
		if _, ok := level.PortalRoom(); !ok {
			t.Fatalf("level %d has no portal", n)
		}
	}
}

func TestNumberFromFile(t *testing.T) {
	cases := map[string]struct {
		want int
		ok   bool
	}{
		"level1.yaml":          {1, true},
		"dir/level12.yaml":     {12, true},
		`C:\levels\level3.yaml`: {3, true},
		"level0.yaml":          {0, false},
		"level.yaml":           {0, false},
		"level1.yml":           {0, false},
		"boss1.yaml":           {0, false},
	}
	for in, tc := range cases {
		got, ok := levels.NumberFromFile(in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("NumberFromFile(%q) = %d, %v; want %d, %v", in, got, ok, tc.want, tc.ok)
		}
	}
}
