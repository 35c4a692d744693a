package cmdshared

import (
	"fmt"

	"github.com/respack/respack/resource"
	"github.com/vbauerster/mpb/v4"
	"github.com/vbauerster/mpb/v4/decor"
)

// ProgressStatus prints each download stage and draws a progress bar for file downloads
type ProgressStatus struct {
	progress *mpb.Progress
	bar      *mpb.Bar
	barStage resource.Stage
	// OK is set once the download has completed
	OK bool
}

var _ resource.ProgressStatus = (*ProgressStatus)(nil)

func (s *ProgressStatus) Start() {
	s.OK = false
}

func (s *ProgressStatus) UpdateStatus(stage resource.Stage, detail string) {
	if s.bar != nil && s.barStage == stage {
		// Percentages are already drawn by the bar
		return
	}
	s.finishBar()
	fmt.Printf("%s...%s\n", stage.DisplayName(), detail)
}

func (s *ProgressStatus) Progress(stage resource.Stage, current int64, total int64) {
	if total <= 0 {
		return
	}
	if s.bar == nil || s.barStage != stage {
		s.finishBar()
		s.progress = mpb.New(mpb.WithWidth(40))
		s.bar = s.progress.AddBar(total,
			mpb.PrependDecorators(decor.Name(stage.DisplayName()+" ")),
			mpb.AppendDecorators(decor.CountersKibiByte("% .1f / % .1f "), decor.Percentage()),
		)
		s.barStage = stage
	}
	s.bar.SetCurrent(current)
}

func (s *ProgressStatus) Complete(ok bool) {
	s.finishBar()
	s.OK = ok
	if ok {
		fmt.Println("Done!")
	} else {
		fmt.Println("Failed!")
	}
}

func (s *ProgressStatus) finishBar() {
	if s.bar == nil {
		return
	}
	s.bar.SetTotal(s.bar.Current(), true)
	s.progress.Wait()
	s.bar = nil
	s.progress = nil
}
