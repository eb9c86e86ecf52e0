package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"taskflow/internal/entities"
	"taskflow/internal/validation"
)

var validate = validation.New()

// DecodeTeams decodes GET /teams. The body must be a JSON array.
func DecodeTeams(body []byte) ([]Team, error) {
	return decodeList[Team](body, "teams", false)
}

// DecodeUsers decodes GET /users and GET /teams/{id}/members. An empty or
// null body is an empty list.
func DecodeUsers(body []byte) ([]User, error) {
	return decodeList[User](body, "users", true)
}

// DecodeTasks decodes GET /tasks/get-task. An empty or null body is an empty list.
func DecodeTasks(body []byte) ([]Task, error) {
	return decodeList[Task](body, "tasks", true)
}

// DecodeTeam decodes a single team object.
func DecodeTeam(body []byte) (Team, error) {
	return decodeObject[Team](body, "team")
}

// DecodeTask decodes a single task object.
func DecodeTask(body []byte) (Task, error) {
	return decodeObject[Task](body, "task")
}

// DecodeLogin decodes a POST /auth/login response.
func DecodeLogin(body []byte) (LoginResponse, error) {
	return decodeObject[LoginResponse](body, "login response")
}

// DecodeRegister decodes a POST /auth/register response.
func DecodeRegister(body []byte) (RegisterResponse, error) {
	return decodeObject[RegisterResponse](body, "register response")
}

// ErrorMessage extracts the server-provided message from an error body, or
// returns "" when there is none.
func ErrorMessage(body []byte) string {
	var eb ErrorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	if len(eb.Errors) > 0 {
		msgs := make([]string, 0, len(eb.Errors))
		for _, e := range eb.Errors {
			if e.Msg != "" {
				msgs = append(msgs, e.Msg)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, ", ")
		}
	}
	if eb.Error != "" {
		return eb.Error
	}
	return eb.Message
}

func decodeList[T any](body []byte, what string, allowEmpty bool) ([]T, error) {
	body = bytes.TrimSpace(body)
	if allowEmpty && (len(body) == 0 || bytes.Equal(body, []byte("null"))) {
		return []T{}, nil
	}
	if len(body) == 0 || body[0] != '[' {
		return nil, fmt.Errorf("%w: invalid %s data format", entities.ErrDecode, what)
	}

	var out []T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", entities.ErrDecode, what, err)
	}
	for i := range out {
		if err := validate.Struct(out[i]); err != nil {
			return nil, fmt.Errorf("%w: %s[%d]: %v", entities.ErrDecode, what, i, err)
		}
	}
	return out, nil
}

func decodeObject[T any](body []byte, what string) (T, error) {
	var out T
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return out, fmt.Errorf("%w: invalid %s data format", entities.ErrDecode, what)
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("%w: %s: %v", entities.ErrDecode, what, err)
	}
	if err := validate.Struct(out); err != nil {
		return out, fmt.Errorf("%w: %s: %v", entities.ErrDecode, what, err)
	}
	return out, nil
}
