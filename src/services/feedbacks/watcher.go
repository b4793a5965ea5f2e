package feedbacks

import (
	"context"
	"errors"
	"log"
	"sync"

	"Backend-CampusEvents/src/models"
	"Backend-CampusEvents/src/services/enrichment"
	"Backend-CampusEvents/src/services/users"
	"Backend-CampusEvents/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Snapshot ชุด enriched feedback + counts ณ เวลาหนึ่ง - แทนที่กันทั้งก้อน ไม่ patch
type Snapshot struct {
	Enriched []models.EnrichedFeedback `json:"feedbacks"`
	Counts   models.SentimentCounts    `json:"counts"`
}

// Watcher ติดตาม change stream ของ feedbacks ที่ scope ด้วย eventId
// ทุกการเปลี่ยนแปลง → คำนวณ snapshot ใหม่จากชุดเต็ม
type Watcher struct {
	eventID primitive.ObjectID
	cancel  context.CancelFunc

	// gate ทิ้งผล recompute ที่เสร็จทีหลังรุ่นที่ publish ไปแล้ว
	gate enrichment.SnapshotGate

	mu   sync.RWMutex
	snap Snapshot
	subs map[chan Snapshot]struct{}
}

var (
	watchersMu sync.Mutex
	watchers   = map[string]*Watcher{}
)

// EnsureWatcher คืน watcher ของ event (สร้างใหม่ถ้ายังไม่มี)
func EnsureWatcher(eventID string) (*Watcher, error) {
	watchersMu.Lock()
	defer watchersMu.Unlock()

	if w, ok := watchers[eventID]; ok {
		return w, nil
	}

	w, err := watchEvent(eventID)
	if err != nil {
		return nil, err
	}
	watchers[eventID] = w
	return w, nil
}

// StopWatcher หยุด subscription ของ event - ไม่มี callback ใดยิงต่อจากนี้
func StopWatcher(eventID string) {
	watchersMu.Lock()
	defer watchersMu.Unlock()

	if w, ok := watchers[eventID]; ok {
		w.Close()
		delete(watchers, eventID)
	}
}

func watchEvent(eventID string) (*Watcher, error) {
	objID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, errors.New("invalid event ID")
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		eventID: objID,
		cancel:  cancel,
		subs:    map[chan Snapshot]struct{}{},
	}

	// delete event ไม่มี fullDocument ให้ match - ยอม recompute เผื่อไว้
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "$or", Value: bson.A{
			bson.D{{Key: "fullDocument.eventId", Value: objID}},
			bson.D{{Key: "operationType", Value: "delete"}},
		}}}}},
	}

	stream, err := feedbackCollection.Watch(ctx, pipeline,
		options.ChangeStream().SetFullDocument(options.UpdateLookup))
	if err != nil {
		cancel()
		return nil, err
	}

	w.recompute(ctx)
	go w.loop(ctx, stream)

	log.Println("👀 watching feedbacks for event:", eventID)
	return w, nil
}

func (w *Watcher) loop(ctx context.Context, stream *mongo.ChangeStream) {
	defer stream.Close(context.Background())

	for stream.Next(ctx) {
		// snapshot ล่าสุดแทน state เดิมทั้งชุด - recompute แบบ async,
		// gate กันผลเก่าทับผลใหม่
		go w.recompute(ctx)
	}

	if err := stream.Err(); err != nil && ctx.Err() == nil {
		log.Println("⚠️ feedback change stream closed:", err)
	}
}

func (w *Watcher) recompute(ctx context.Context) {
	gen := w.gate.Begin()

	fbs, err := fetchByEvent(ctx, feedbackCollection, w.eventID)
	if err != nil {
		if ctx.Err() == nil {
			log.Println("⚠️ watcher recompute failed:", err)
		}
		return
	}

	userMap := users.ResolveMany(ctx, enrichment.DistinctUserIDs(fbs))
	enriched := enrichment.BuildEnriched(fbs, userMap)
	snap := Snapshot{Enriched: enriched, Counts: enrichment.CountBySentiment(enriched)}

	// ตัดสินใต้ lock เท่านั้น: รุ่นที่แพ้ทิ้งทั้ง snapshot และ cache
	w.mu.Lock()
	if !w.gate.Commit(gen) {
		w.mu.Unlock()
		return
	}
	w.snap = snap
	for ch := range w.subs {
		select {
		case ch <- snap:
		default: // subscriber ช้า - ข้าม ไม่ block stream
		}
	}
	utils.CacheSentimentCounts(w.eventID.Hex(), snap.Counts)
	w.mu.Unlock()

	go persistSentiments(enriched)
}

// Snapshot คืน state ล่าสุด (read-only derived view)
func (w *Watcher) Snapshot() Snapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.snap
}

// Subscribe รับ snapshot ใหม่ทุกครั้งที่ underlying data เปลี่ยน
func (w *Watcher) Subscribe() chan Snapshot {
	ch := make(chan Snapshot, 1)
	w.mu.Lock()
	w.subs[ch] = struct{}{}
	w.mu.Unlock()
	return ch
}

// Unsubscribe ถอน subscriber - channel จะไม่ได้รับอะไรอีก
func (w *Watcher) Unsubscribe(ch chan Snapshot) {
	w.mu.Lock()
	if _, ok := w.subs[ch]; ok {
		delete(w.subs, ch)
		close(ch)
	}
	w.mu.Unlock()
}

// Close ปิด change stream และตัด subscriber ทั้งหมด
func (w *Watcher) Close() {
	w.cancel()
	w.mu.Lock()
	for ch := range w.subs {
		delete(w.subs, ch)
		close(ch)
	}
	w.mu.Unlock()
}
