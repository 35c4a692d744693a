package resource

import (
	"fmt"
	"io"
)

// Status receives updates while a download runs. Complete is called exactly once, after Start.
type Status interface {
	Start()
	UpdateStatus(stage Stage, detail string)
	Complete(ok bool)
}

// ProgressStatus is implemented by statuses that also want raw byte counts of downloads
type ProgressStatus interface {
	Status
	Progress(stage Stage, current int64, total int64)
}

// StatusFuncs adapts plain callbacks to a Status; nil callbacks are skipped
type StatusFuncs struct {
	OnStart    func()
	OnUpdate   func(stageKey string, detail string)
	OnComplete func(ok bool)
}

func (s StatusFuncs) Start() {
	if s.OnStart != nil {
		s.OnStart()
	}
}

func (s StatusFuncs) UpdateStatus(stage Stage, detail string) {
	if s.OnUpdate != nil {
		s.OnUpdate(stage.Key(), detail)
	}
}

func (s StatusFuncs) Complete(ok bool) {
	if s.OnComplete != nil {
		s.OnComplete(ok)
	}
}

var _ Status = StatusFuncs{}

// progressReader reports percentages of a download to a Status as it is read
type progressReader struct {
	io.Reader
	stage       Stage
	status      Status
	total       int64
	current     int64
	lastPercent int
}

func newProgressReader(r io.Reader, total int64, stage Stage, status Status) *progressReader {
	return &progressReader{Reader: r, stage: stage, status: status, total: total, lastPercent: -1}
}

func (r *progressReader) Read(p []byte) (int, error) {
	n, err := r.Reader.Read(p)
	if n > 0 {
		r.current += int64(n)
		r.report()
	}
	return n, err
}

func (r *progressReader) report() {
	if ps, ok := r.status.(ProgressStatus); ok {
		ps.Progress(r.stage, r.current, r.total)
	}
	if r.total <= 0 {
		return
	}
	percent := int(r.current * 100 / r.total)
	if percent > 100 {
		percent = 100
	}
	if percent != r.lastPercent {
		r.lastPercent = percent
		r.status.UpdateStatus(r.stage, fmt.Sprintf(" %d%%", percent))
	}
}
