package levels_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/levels"
	"github.com/KirkDiggler/rpg-dungeon/internal/testutils"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := levels.NewInMemory(testutils.CreateTestLevelData(2), testutils.CreateTestLevelData(1))

	out, err := repo.Get(ctx, levels.GetInput{Number: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Data.Number)

	_, err = repo.Get(ctx, levels.GetInput{Number: 3})
	assert.True(t, errors.IsNotFound(err))

	list, err := repo.List(ctx, levels.ListInput{})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, list.Numbers)
}
