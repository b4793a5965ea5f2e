package enrichment

import "sync/atomic"

// SnapshotGate ออกหมายเลขรุ่นให้การ recompute และกันผลรุ่นเก่าทับ snapshot รุ่นใหม่
// Begin เรียกพร้อมกันได้จากหลาย goroutine ส่วน Commit ต้องเรียกใต้ lock
// ตัวเดียวกับที่คุ้มครอง snapshot
type SnapshotGate struct {
	next      uint64 // atomic
	published uint64 // รุ่นล่าสุดที่ publish แล้ว - อ่าน/เขียนใต้ lock ของ caller เท่านั้น
}

// Begin ออกหมายเลขรุ่นสำหรับ recompute รอบใหม่
func (g *SnapshotGate) Begin() uint64 {
	return atomic.AddUint64(&g.next, 1)
}

// Commit ตัดสินว่าผลของรุ่น gen ยัง publish ได้หรือไม่
// ได้เฉพาะเมื่อ gen ใหม่กว่ารุ่นล่าสุดที่ publish ไปแล้ว - รุ่นที่แพ้ต้องทิ้งผลทั้งก้อน
func (g *SnapshotGate) Commit(gen uint64) bool {
	if gen <= g.published {
		return false
	}
	g.published = gen
	return true
}
