package sanctum

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the number of in-flight requests issued by the
// bulk helpers.
const DefaultConcurrency = 10

// BulkResult contains the results of a bulk operation
type BulkResult struct {
	Requested  int
	Successful []int64
	Failed     []BulkError
}

// BulkError contains information about a failed item of a bulk operation
type BulkError struct {
	ID  int64
	Err error
}

// Error implements the error interface
func (e BulkError) Error() string {
	return fmt.Sprintf("failed to process ID %d: %v", e.ID, e.Err)
}

// Unwrap returns the underlying request error
func (e BulkError) Unwrap() error {
	return e.Err
}

// DeleteInfractions deletes several infractions of one guild concurrently.
// A failed deletion is recorded in the result and does not stop the others.
func (c *Client) DeleteInfractions(ctx context.Context, guildID int64, infractionIDs []int64) BulkResult {
	return c.bulk(ctx, infractionIDs, func(ctx context.Context, id int64) error {
		_, err := c.DeleteInfraction(ctx, guildID, id)
		return err
	})
}

// DeleteTimers deletes several timers concurrently.
func (c *Client) DeleteTimers(ctx context.Context, timerIDs []int64) BulkResult {
	return c.bulk(ctx, timerIDs, func(ctx context.Context, id int64) error {
		_, err := c.DeleteTimer(ctx, id)
		return err
	})
}

func (c *Client) bulk(ctx context.Context, ids []int64, fn func(context.Context, int64) error) BulkResult {
	result := BulkResult{
		Requested: len(ids),
	}

	if len(ids) == 0 {
		return result
	}

	var g errgroup.Group
	g.SetLimit(c.concurrency)

	successChan := make(chan int64, len(ids))
	errorChan := make(chan BulkError, len(ids))

	for _, id := range ids {
		id := id // per-iteration copy (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			if err := fn(ctx, id); err != nil {
				c.logger.Warn().Err(err).Int64("id", id).Msg("Bulk operation item failed")
				errorChan <- BulkError{ID: id, Err: err}
				return nil
			}
			successChan <- id
			return nil
		})
	}

	g.Wait()
	close(successChan)
	close(errorChan)

	for id := range successChan {
		result.Successful = append(result.Successful, id)
	}
	for err := range errorChan {
		result.Failed = append(result.Failed, err)
	}

	return result
}
