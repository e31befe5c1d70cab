package client

import "net/http"

// Action is the category of an operation; it selects the default status table.
type Action int

const (
	ActionCreate Action = iota
	ActionUpdate
	ActionDelete
	ActionReadOne
	ActionReadCollection
	ActionSettingsUpload
)

func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionUpdate:
		return "update"
	case ActionDelete:
		return "delete"
	case ActionReadOne:
		return "read"
	case ActionReadCollection:
		return "list"
	case ActionSettingsUpload:
		return "settings-upload"
	default:
		return "unknown"
	}
}

// Table lists which statuses are success and which are domain errors for one
// action. Every status not listed classifies as UnexpectedStatus.
type Table struct {
	Success []int
	Errors  map[int]ErrorKind
}

// DefaultTable returns the status table for an action.
func DefaultTable(action Action) Table {
	switch action {
	case ActionCreate, ActionUpdate:
		return Table{
			Success: []int{http.StatusOK},
			Errors:  map[int]ErrorKind{http.StatusBadRequest: KindCreationRejected},
		}
	case ActionDelete:
		return Table{
			Success: []int{http.StatusNoContent},
			Errors:  map[int]ErrorKind{http.StatusNotFound: KindNotFound},
		}
	case ActionReadOne:
		return Table{
			Success: []int{http.StatusOK},
			Errors: map[int]ErrorKind{
				http.StatusNotFound:           KindNotFound,
				http.StatusServiceUnavailable: KindServerUnavailable,
			},
		}
	case ActionReadCollection:
		return Table{
			Success: []int{http.StatusOK},
			Errors:  map[int]ErrorKind{http.StatusServiceUnavailable: KindServerUnavailable},
		}
	case ActionSettingsUpload:
		return Table{
			Success: []int{http.StatusNoContent},
			Errors:  map[int]ErrorKind{http.StatusBadRequest: KindInvalidSettings},
		}
	default:
		return Table{}
	}
}

// WithSuccess returns a copy of t whose success statuses are replaced.
func (t Table) WithSuccess(codes ...int) Table {
	out := t.clone()
	out.Success = append([]int(nil), codes...)
	return out
}

// WithError returns a copy of t with status mapped to kind.
func (t Table) WithError(status int, kind ErrorKind) Table {
	out := t.clone()
	out.Errors[status] = kind
	return out
}

func (t Table) clone() Table {
	out := Table{
		Success: append([]int(nil), t.Success...),
		Errors:  make(map[int]ErrorKind, len(t.Errors)),
	}
	for k, v := range t.Errors {
		out.Errors[k] = v
	}
	return out
}

// Classify maps a response status onto an outcome: nil for success, otherwise
// an *Error whose Message carries the body for domain errors.
func Classify(t Table, status int, body string) error {
	for _, code := range t.Success {
		if code == status {
			return nil
		}
	}
	if kind, ok := t.Errors[status]; ok {
		e := &Error{Kind: kind, StatusCode: status}
		// Only payload rejections carry the server's explanation.
		switch kind {
		case KindCreationRejected, KindInvalidSettings, KindInvalidCredentials:
			e.Message = body
		}
		return e
	}
	return &Error{Kind: KindUnexpectedStatus, StatusCode: status}
}
