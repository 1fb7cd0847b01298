package comparer

import (
	"io"
	"sync"

	"github.com/Redundancy/hashroll/chunks"
)

type ChunkResult struct {
	// In case of error
	Err error

	// Offset of the chunk in its source
	Offset int64
	Data   []byte
}

/*
StreamChunks reads source through incr on its own goroutine, emitting each chunk to the returned
channel, remainder included. Callers should check for .Err != nil on the results, in which case
the stream ends immediately.
*/
func StreamChunks(incr chunks.Incremental, source io.Reader, bufSize int) <-chan ChunkResult {
	results := make(chan ChunkResult)

	go streamChunks(results, incr, source, bufSize)

	return results
}

func streamChunks(results chan<- ChunkResult, incr chunks.Incremental, source io.Reader, bufSize int) {
	defer close(results)

	it, err := chunks.NewStreamIter(incr, source, bufSize, chunks.Partial)
	if err != nil {
		results <- ChunkResult{Err: err}
		return
	}

	var offset int64
	for {
		chunk, err := it.Next()

		if err == io.EOF {
			return
		} else if err != nil {
			results <- ChunkResult{Err: err, Offset: offset}
			return
		}

		results <- ChunkResult{Offset: offset, Data: chunk}
		offset += int64(len(chunk))
	}
}

// CompareReaders chunks reference and comparison concurrently with fresh states of c,
// and summarizes the comparison against the reference
func CompareReaders(c chunks.Chunker, reference, comparison io.Reader, bufSize int) (Summary, error) {
	var (
		wait     sync.WaitGroup
		refErr   error
		compErr  error
		index    = make(Index)
		received [][]byte
	)

	wait.Add(2)

	go func() {
		defer wait.Done()
		for result := range StreamChunks(c.NewIncremental(), reference, bufSize) {
			if result.Err != nil {
				refErr = result.Err
				continue
			}
			index[string(result.Data)] = struct{}{}
		}
	}()

	// the index is incomplete until the reference is done, so comparison chunks are held
	go func() {
		defer wait.Done()
		for result := range StreamChunks(c.NewIncremental(), comparison, bufSize) {
			if result.Err != nil {
				compErr = result.Err
				continue
			}
			received = append(received, result.Data)
		}
	}()

	wait.Wait()

	if refErr != nil {
		return Summary{}, refErr
	}
	if compErr != nil {
		return Summary{}, compErr
	}

	var s Summary
	for _, chunk := range received {
		s.Add(index, chunk)
	}
	return s, nil
}
