package bmp2mif

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
)

func (c *Converter) findBitmaps(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories
			if info.Name()[0] == '.' && file != base {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a normal file
			if !info.Mode().IsRegular() || !strings.EqualFold(filepath.Ext(file), ".bmp") {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (c *Converter) bitmapWorker(ctx context.Context, in <-chan string, count *int64) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			select {
			case <-ctx.Done():
				return
			default:
			}

			if _, err := c.ConvertFile(file, ""); err != nil {
				errc <- err
				return
			}
			atomic.AddInt64(count, 1)
		}
	}()
	return errc, nil
}

// Return the first error, cancelling the rest of the pipeline and waiting
// for every stage to finish
func waitForPipeline(cancelFunc context.CancelFunc, errs ...<-chan error) error {
	var first error
	for err := range mergeErrors(errs...) {
		if err != nil && first == nil {
			first = err
			cancelFunc()
		}
	}
	return first
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// ConvertDir converts every bitmap found under path, writing each MIF file
// alongside its bitmap. Up to workers files are converted at once. It stops
// at the first error and no conversion is still running when it returns.
func (c *Converter) ConvertDir(path string, workers int) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInput, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %q is not a directory", ErrInput, dir)
	}

	if workers < 1 {
		workers = 1
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := c.findBitmaps(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	var count int64
	for i := 0; i < workers; i++ {
		errc, err := c.bitmapWorker(ctx, files, &count)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	if err := waitForPipeline(cancelFunc, errcList...); err != nil {
		return err
	}

	c.logger.Printf("Converted %d bitmaps in \"%s\"\n", atomic.LoadInt64(&count), dir)

	return nil
}
