package ecs_test

import (
	"testing"

	"github.com/plus3/tickworld/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllStagesOrder(t *testing.T) {
	assert.Equal(t, []ecs.Stage{
		ecs.Start,
		ecs.EarlyUpdate,
		ecs.Update,
		ecs.LateUpdate,
		ecs.PreRender,
		ecs.Render,
		ecs.PostRender,
		ecs.End,
	}, ecs.AllStages())
	assert.Equal(t, ecs.Update, ecs.DefaultStage)
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "Start", ecs.Start.String())
	assert.Equal(t, "PostRender", ecs.PostRender.String())
	assert.Equal(t, "Stage(9)", ecs.Stage(9).String())
}

func TestStageValid(t *testing.T) {
	for _, stage := range ecs.AllStages() {
		assert.True(t, stage.Valid(), stage.String())
	}
	assert.False(t, ecs.Stage(8).Valid())
}

func TestParseStage(t *testing.T) {
	for _, stage := range ecs.AllStages() {
		got, err := ecs.ParseStage(stage.String())
		require.NoError(t, err)
		assert.Equal(t, stage, got)
	}

	got, err := ecs.ParseStage("lateupdate")
	require.NoError(t, err)
	assert.Equal(t, ecs.LateUpdate, got)

	_, err = ecs.ParseStage("physics")
	assert.ErrorIs(t, err, ecs.ErrInvalidStage)
}
