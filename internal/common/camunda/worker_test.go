// internal/common/camunda/worker_test.go
package camunda

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"career-guidance-workers/internal/common/errors"
)

func TestFailureCode(t *testing.T) {
	assert.Equal(t, "INVALID_QUIZ_ANSWERS", failureCode(errors.NewInvalidQuizAnswersError("bad payload")))
	assert.Equal(t, "QUERY_EXECUTION_FAILED", failureCode(errors.NewQueryExecutionFailedError("lookup", fmt.Errorf("boom"))))
	assert.Equal(t, "INTERNAL_ERROR", failureCode(fmt.Errorf("boom")))
}
