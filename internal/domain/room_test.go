package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	room, err := NewRoom("Lab1", 30)
	require.NoError(t, err)
	assert.Equal(t, "Lab1", room.Name())
	assert.Equal(t, 30, room.Capacity())

	_, err = NewRoom("", 30)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = NewRoom("Lab1", -1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestRoomPoints(t *testing.T) {
	room, err := NewRoom("Lab1", 30)
	require.NoError(t, err)
	assert.InDelta(t, 15.0, room.Points(), 1e-9)

	empty, err := NewRoom("Closet", 0)
	require.NoError(t, err)
	assert.Zero(t, empty.Points())
}

func TestRoomEqualByName(t *testing.T) {
	a, err := NewRoom("Lab1", 30)
	require.NoError(t, err)
	b, err := NewRoom("Lab1", 10)
	require.NoError(t, err)
	c, err := NewRoom("lab1", 30)
	require.NoError(t, err)

	assert.True(t, a.Equal(b), "capacity is not part of identity")
	assert.False(t, a.Equal(c), "names are case-sensitive")
}

func TestRoomString(t *testing.T) {
	room, err := NewRoom("Lab1", 30)
	require.NoError(t, err)
	assert.Equal(t, "[name=Lab1, capacity=30]", room.String())
}
