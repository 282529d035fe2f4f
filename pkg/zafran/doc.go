// Package zafran renders a single-line, in-place progress bar.
//
// A Bar tracks a bounded unit of work. Every call to Update redraws the
// line on the bar's writer, prefixed with a carriage return so the next
// redraw overwrites it. Finish completes the bar and ends the line.
//
// # Usage
//
//	bar, err := zafran.New(100)
//	if err != nil {
//	    return err
//	}
//	bar.SetPrefix("Working")
//	bar.SetNCols(50)
//
//	for i := uint64(0); i < bar.Total(); i++ {
//	    bar.Update(i)
//	}
//	bar.Finish("Done", "ok")
//
// # Styles
//
//	default   Working: [#####.....] [ 50% | 50/100] ETA: 00h:00m:05s ok
//	download  Working: [#####.....] 500.00B/s / 1000.00B/s [ 50%] in 5s (~00h:00m:05s, 0.10KB/s) ok
//
// A Bar is not safe for concurrent use. Callers sharing one across
// goroutines must serialise every call themselves.
//
// Malformed settings never fail: they are normalised to defaults. Callers
// that want to know about them can use CheckNCols, CheckFormat and
// Bar.Validate.
package zafran
