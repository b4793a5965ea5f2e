package enrichment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotGate(t *testing.T) {
	t.Run("TestInOrderCommits", func(t *testing.T) {
		var g SnapshotGate
		first := g.Begin()
		second := g.Begin()

		assert.True(t, g.Commit(first))
		assert.True(t, g.Commit(second))
	})

	t.Run("TestStaleResultDiscarded", func(t *testing.T) {
		// recompute เก่าที่เสร็จทีหลังต้องไม่ทับผลของรุ่นใหม่ที่ publish ไปแล้ว
		var g SnapshotGate
		slow := g.Begin()
		fast := g.Begin()

		assert.True(t, g.Commit(fast))
		assert.False(t, g.Commit(slow))
	})

	t.Run("TestCommitIsOneShot", func(t *testing.T) {
		var g SnapshotGate
		gen := g.Begin()

		assert.True(t, g.Commit(gen))
		assert.False(t, g.Commit(gen))
	})

	t.Run("TestNextGenerationAfterDiscard", func(t *testing.T) {
		var g SnapshotGate
		slow := g.Begin()
		fast := g.Begin()
		assert.True(t, g.Commit(fast))
		assert.False(t, g.Commit(slow))

		// รุ่นถัดไปยัง publish ได้ตามปกติ
		assert.True(t, g.Commit(g.Begin()))
	})
}
