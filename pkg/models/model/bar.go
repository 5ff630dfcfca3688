package model

import (
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
)

type Bar progressbar.ProgressBar

func NewBar(len int, description string, w io.Writer) *Bar {
	return (*Bar)(progressbar.NewOptions(len,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	))
}

func (b *Bar) Add(i int) {
	_ = (*progressbar.ProgressBar)(b).Add(i)
}

func (b *Bar) Goto(i int) {
	_ = (*progressbar.ProgressBar)(b).Set(i)
}

func (b *Bar) Close() {
	_ = (*progressbar.ProgressBar)(b).Finish()
	_ = (*progressbar.ProgressBar)(b).Close()
}

// SearchProgress feeds root move progress into a fresh bar per search. The
// bar is rebuilt whenever a new search starts.
type SearchProgress struct {
	w           io.Writer
	description string
	bar         *Bar
}

func NewSearchProgress(description string, w io.Writer) *SearchProgress {
	return &SearchProgress{w: w, description: description}
}

func (p *SearchProgress) Report(done, total int) {
	if p.bar == nil || done == 1 {
		if p.bar != nil {
			p.bar.Close()
		}
		p.bar = NewBar(total, p.description, p.w)
	}

	p.bar.Goto(done)
	if done == total {
		p.bar.Close()
		p.bar = nil
	}
}
