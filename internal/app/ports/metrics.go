package ports

import "zoosim/internal/domain/zoo"

type CareMetrics interface {
	RecordSuccess(intent zoo.CareType, resultCode zoo.ResultCode)
	RecordConflict()
	RecordFailure()
}
