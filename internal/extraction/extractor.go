package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"meetscribe-backend/internal/extraction/normalize"
	taskdomain "meetscribe-backend/internal/task/domain"
	userdomain "meetscribe-backend/internal/user/domain"
	"meetscribe-backend/pkg/ai"
)

// Candidate is one task object proposed by the model, prior to
// normalization. Every field is untrusted free text.
type Candidate struct {
	Task     string `json:"task"`
	Assignee string `json:"assignee"`
	Role     string `json:"role"`
	Deadline string `json:"deadline"`
}

// UserDirectory resolves assignees against the user store.
type UserDirectory interface {
	FindByName(name string) (*userdomain.User, error)
	FindByEmployeeRole(role string) (*userdomain.User, error)
}

// ParseError reports model output that was not valid JSON.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("model output is not valid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError reports model output that parsed but was not the expected
// JSON array of task objects.
type SchemaError struct {
	Raw    string
	Reason string
}

func (e *SchemaError) Error() string {
	return "model output does not match the task array schema: " + e.Reason
}

// Extractor prompts a generative model with a meeting transcript and
// turns its output into validated task records. It performs no
// persistence; lookups go through the UserDirectory.
type Extractor struct {
	model ai.Generator
	users UserDirectory
	now   func() time.Time
}

// NewExtractor creates an Extractor over the given model and directory.
func NewExtractor(model ai.Generator, users UserDirectory) *Extractor {
	return &Extractor{
		model: model,
		users: users,
		now:   time.Now,
	}
}

const promptHeader = `Extract ALL tasks and assignments from the following meeting transcript and format them as a JSON array.
Analyze the entire transcript carefully to identify every distinct task or assignment mentioned.

Each task object must have these exact fields:
- task: the task description
- assignee: the person assigned (if not specified, leave empty)
- role: must be one of: Sales Analyst, Presentation Designer, Software Engineer, Marketing Manager
- deadline: when it's due (use exact date if specified, or relative terms like 'tomorrow', 'next week', etc.)

For the role field, analyze the context and task to determine the most appropriate role:
- sales, reports, analytics, revenue -> Sales Analyst
- presentations, slides, design, visuals -> Presentation Designer
- code, development, technical, bugs -> Software Engineer
- marketing, campaigns, social media, promotion -> Marketing Manager

Important:
- Create a separate task object for EACH distinct task mentioned
- If multiple tasks are assigned to the same person, create separate entries
- If a task is assigned to multiple people, create separate entries for each person
- If a task is assigned based on a name and the name does not match the role, flag it so it can be reassigned to a user with the matching role
- For tasks without explicit deadlines, use "Not specified"

Format the response as valid JSON only, with no additional text.

Example format for multiple tasks:
[
    {
        "task": "Prepare sales report",
        "assignee": "Alex",
        "role": "Sales Analyst",
        "deadline": "tomorrow"
    },
    {
        "task": "Update website design",
        "assignee": "Sarah",
        "role": "Presentation Designer",
        "deadline": "next week"
    }
]

Transcript:
`

// buildPrompt assembles the extraction prompt for one transcript.
func buildPrompt(transcript string) string {
	return promptHeader + transcript
}

// Extract asks the model for the transcript's action items and returns
// the validated records. Model failures and malformed output are logged
// and yield an empty slice; they are never fatal to the capture loop.
func (e *Extractor) Extract(ctx context.Context, transcript string) []taskdomain.ValidatedTask {
	response, err := e.model.Generate(ctx, buildPrompt(transcript))
	if err != nil {
		log.Printf("[Extractor] Model request failed: %v", err)
		return nil
	}

	candidates, err := ParseCandidates(response)
	if err != nil {
		log.Printf("[Extractor] Discarding batch: %v", err)
		return nil
	}

	now := e.now()
	var validated []taskdomain.ValidatedTask
	dropped := 0
	for _, c := range candidates {
		role := normalize.Role(c.Role)
		if !normalize.IsCanonical(role) {
			dropped++
			continue
		}

		task := taskdomain.ValidatedTask{
			Description:        c.Task,
			AssigneeName:       c.Assignee,
			Role:               taskdomain.Role(role),
			Deadline:           normalize.Deadline(c.Deadline, now),
			Status:             taskdomain.TaskStatusPending,
			CreatedAt:          now,
			OriginalTranscript: transcript,
		}
		e.reconcileAssignee(&task)
		validated = append(validated, task)
	}

	if dropped > 0 {
		log.Printf("[Extractor] Filtered out %d tasks with invalid roles", dropped)
	}

	return validated
}

// reconcileAssignee resolves the stated assignee against the user
// store. A named assignee whose actual role conflicts with the
// extracted role is replaced by any user holding that role; when no
// such user exists the task keeps the stated name with no resolved ID
// and the conflict is surfaced as a warning.
func (e *Extractor) reconcileAssignee(task *taskdomain.ValidatedTask) {
	if task.AssigneeName == "" {
		return
	}

	user, err := e.users.FindByName(task.AssigneeName)
	if err != nil {
		log.Printf("[Extractor] Assignee lookup failed for %q: %v", task.AssigneeName, err)
		return
	}
	if user == nil {
		return
	}

	if user.EmployeeRole == string(task.Role) {
		task.AssigneeID = user.ID
		return
	}

	log.Printf("[Extractor] Warning: task %q assigned to %q with role %q does not match their actual role %q, reassigning",
		task.Description, task.AssigneeName, task.Role, user.EmployeeRole)

	substitute, err := e.users.FindByEmployeeRole(string(task.Role))
	if err != nil {
		log.Printf("[Extractor] Substitute lookup failed for role %q: %v", task.Role, err)
		return
	}
	if substitute == nil {
		log.Printf("[Extractor] Warning: no user found with role %q to assign task %q", task.Role, task.Description)
		task.AssigneeID = ""
		return
	}

	task.AssigneeName = substitute.Name
	task.AssigneeID = substitute.ID
}

// ParseCandidates validates one model response as a JSON array of task
// objects. Code-fence markers are stripped first; anything outside the
// outermost brackets is ignored.
func ParseCandidates(response string) ([]Candidate, error) {
	text := strings.TrimSpace(response)
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		return nil, &SchemaError{Raw: response, Reason: "no JSON array found"}
	}
	text = text[start : end+1]

	var candidates []Candidate
	if err := json.Unmarshal([]byte(text), &candidates); err != nil {
		return nil, &ParseError{Raw: response, Err: err}
	}

	return candidates, nil
}
