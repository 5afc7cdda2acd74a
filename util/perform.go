package util

import "time"

// Perform runs task until it succeeds or attempts run out, sleeping wait
// between attempts. An error that retryable rejects is returned at once.
func Perform(attempts int, wait time.Duration, retryable func(error) bool, task func() error) (err error) {
	for attempt := 1; attempt <= attempts; attempt++ {
		err = task()
		if err == nil || !retryable(err) {
			return err
		}

		if attempt < attempts {
			time.Sleep(wait)
		}
	}
	return err
}
