// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/levels"
	levelsmock "github.com/KirkDiggler/rpg-dungeon/internal/repositories/levels/mock"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/saves"
	savesmock "github.com/KirkDiggler/rpg-dungeon/internal/repositories/saves/mock"
)

// ExpectLevelGet serves data for its level number
func ExpectLevelGet(mockRepo *levelsmock.MockRepository, data *dungeon.LevelData) *gomock.Call {
	return mockRepo.EXPECT().
		Get(gomock.Any(), levels.GetInput{Number: data.Number}).
		Return(&levels.GetOutput{Data: data}, nil)
}

// ExpectLevelMissing reports a level as not found
func ExpectLevelMissing(mockRepo *levelsmock.MockRepository, number int, err error) *gomock.Call {
	return mockRepo.EXPECT().
		Get(gomock.Any(), levels.GetInput{Number: number}).
		Return(nil, err)
}

// ExpectSave accepts one save and hands the stored input to capture when
// it is not nil
func ExpectSave(mockRepo *savesmock.MockRepository, capture *saves.SaveInput) *gomock.Call {
	return mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input saves.SaveInput) (*saves.SaveOutput, error) {
			if capture != nil {
				*capture = input
			}
			return &saves.SaveOutput{Record: input.Record}, nil
		})
}

// ExpectSaveError fails one save with err
func ExpectSaveError(mockRepo *savesmock.MockRepository, err error) *gomock.Call {
	return mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil, err)
}

// ExpectLoad returns rec for slot, or err when it is not nil
func ExpectLoad(mockRepo *savesmock.MockRepository, slot string, rec saves.Record, err error) *gomock.Call {
	call := mockRepo.EXPECT().Load(gomock.Any(), saves.LoadInput{Slot: slot})
	if err != nil {
		return call.Return(nil, err)
	}
	return call.Return(&saves.LoadOutput{Record: rec}, nil)
}
