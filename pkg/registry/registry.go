// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"

	"career-guidance-workers/internal/common/validation"
)

func LoadRegistry(path string) (*ActivityRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg ActivityRegistry
	err = json.Unmarshal(data, &reg)
	return &reg, err
}

// FindByTaskType returns the activity registered for a Zeebe task type.
func (r *ActivityRegistry) FindByTaskType(taskType string) *Activity {
	for i := range r.Activities {
		if r.Activities[i].TaskType == taskType {
			return &r.Activities[i]
		}
	}
	return nil
}

// ValidateInput checks a raw job payload against the activity's input schema.
// Activities without a schema accept everything.
func (r *ActivityRegistry) ValidateInput(taskType string, payload []byte) (*validation.Result, error) {
	activity := r.FindByTaskType(taskType)
	if activity == nil {
		return nil, fmt.Errorf("no activity registered for task type %q", taskType)
	}
	if len(activity.InputSchema) == 0 {
		return &validation.Result{Valid: true}, nil
	}

	schemaJSON, err := json.Marshal(activity.InputSchema)
	if err != nil {
		return nil, fmt.Errorf("input schema for %q is not serializable: %w", taskType, err)
	}
	return validation.ValidateBytes(string(schemaJSON), payload)
}
