package jsonvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectAddSetRemoveMember(t *testing.T) {
	obj := NewObject()
	obj.AddMember("a", NewInteger(1))
	obj.AddMember("b", NewInteger(2))

	assert.Equal(t, 2, obj.NbMembers())
	assert.True(t, obj.HasMember("a"))

	added := obj.SetMember("a", NewInteger(100))
	assert.False(t, added, "setting an existing key should replace, not add")
	v, ok := obj.Member("a")
	require.True(t, ok)
	assert.Equal(t, int64(100), v.IntegerValue())

	added = obj.SetMember("c", NewInteger(3))
	assert.True(t, added)
	assert.Equal(t, 3, obj.NbMembers())

	removed := obj.RemoveMember("a")
	assert.Equal(t, 1, removed)
	assert.False(t, obj.HasMember("a"))
	assert.Equal(t, 2, obj.NbMembers())

	for i := 0; i < obj.NbMembers(); i++ {
		_, _, err := obj.NthMember(i)
		require.NoError(t, err)
	}
	k0, _, err := obj.NthMember(0)
	require.NoError(t, err)
	assert.Equal(t, "b", k0.StringValue())
}

func TestObjectDuplicateKeysPreserveInsertionOrderAndFirstMatch(t *testing.T) {
	obj := NewObject()
	obj.AddMember("a", NewInteger(1))
	obj.AddMember("a", NewInteger(2))

	assert.Equal(t, 2, obj.NbMembers())
	v, ok := obj.Member("a")
	require.True(t, ok)
	assert.Equal(t, int64(1), v.IntegerValue(), "Member returns the first match")
}

func TestArrayElementOutOfRange(t *testing.T) {
	arr := NewArray()
	arr.AddElement(NewInteger(1))

	_, err := arr.Element(5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestCloneIsIndependent(t *testing.T) {
	orig := NewObject()
	orig.AddMember("nested", NewArray())
	nested, _ := orig.Member("nested")
	nested.AddElement(NewInteger(1))

	clone := orig.Clone()
	assert.True(t, Equal(orig, clone))

	clonedNested, _ := clone.Member("nested")
	clonedNested.AddElement(NewInteger(2))

	origNested, _ := orig.Member("nested")
	assert.Equal(t, 1, origNested.NbElements(), "mutating the clone must not affect the original")
	assert.Equal(t, 2, clonedNested.NbElements())
}

func TestEqualObjectsIgnoreMemberOrder(t *testing.T) {
	a := NewObject()
	a.AddMember("x", NewInteger(1))
	a.AddMember("y", NewInteger(2))

	b := NewObject()
	b.AddMember("y", NewInteger(2))
	b.AddMember("x", NewInteger(1))

	assert.True(t, Equal(a, b))
}

func TestEqualArraysArePositional(t *testing.T) {
	a := NewArray()
	a.AddElement(NewInteger(1))
	a.AddElement(NewInteger(2))

	b := NewArray()
	b.AddElement(NewInteger(2))
	b.AddElement(NewInteger(1))

	assert.False(t, Equal(a, b))
}

func TestIntegerNeverEqualsReal(t *testing.T) {
	assert.False(t, Equal(NewInteger(1), NewReal(1.0)))
}

func TestMergeAppliesSetMemberInOrder(t *testing.T) {
	dst := NewObject()
	dst.AddMember("a", NewInteger(1))

	src := NewObject()
	src.AddMember("a", NewInteger(100))
	src.AddMember("b", NewInteger(2))

	Merge(dst, src)

	assert.Equal(t, 2, dst.NbMembers())
	v, _ := dst.Member("a")
	assert.Equal(t, int64(100), v.IntegerValue())
}

func TestMembersIteratorVisitsInOrder(t *testing.T) {
	obj := NewObject()
	obj.AddMember("a", NewInteger(1))
	obj.AddMember("b", NewInteger(2))

	var keys []string
	for k, v := range obj.Members() {
		keys = append(keys, k.StringValue())
		_ = v
	}
	assert.Equal(t, []string{"a", "b"}, keys)
}
