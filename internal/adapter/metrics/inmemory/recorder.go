package inmemory

import (
	"sync"

	"zoosim/internal/domain/zoo"
)

type Snapshot struct {
	CareTotal    uint64            `json:"care_total"`
	CareSuccess  uint64            `json:"care_success"`
	CareConflict uint64            `json:"care_conflict"`
	CareFailure  uint64            `json:"care_failure"`
	ByIntent     map[string]uint64 `json:"by_intent"`
	ByResultCode map[string]uint64 `json:"by_result_code"`
}

type Recorder struct {
	mu       sync.Mutex
	success  uint64
	conflict uint64
	failure  uint64
	byIntent map[string]uint64
	byResult map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byIntent: map[string]uint64{},
		byResult: map[string]uint64{},
	}
}

func (r *Recorder) RecordSuccess(intent zoo.CareType, resultCode zoo.ResultCode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	r.byIntent[string(intent)]++
	r.byResult[string(resultCode)]++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		CareSuccess:  r.success,
		CareConflict: r.conflict,
		CareFailure:  r.failure,
		CareTotal:    r.success + r.conflict + r.failure,
		ByIntent:     make(map[string]uint64, len(r.byIntent)),
		ByResultCode: make(map[string]uint64, len(r.byResult)),
	}
	for k, v := range r.byIntent {
		out.ByIntent[k] = v
	}
	for k, v := range r.byResult {
		out.ByResultCode[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
