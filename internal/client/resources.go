package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/anmicius0/nexus-cli/internal/utils"
	"go.uber.org/zap"
)

var (
	// ErrIDRequired is returned before any I/O when an id-addressed action gets no id.
	ErrIDRequired = errors.New("resource id is required")
	// ErrUnknownResource is returned for a kind missing from the descriptor table.
	ErrUnknownResource = errors.New("unknown resource kind")
)

// Resources is the single operations facade over a descriptor table and the
// shared classifier. Every call is exactly one exchange.
type Resources struct {
	transport   Transport
	descriptors map[ResourceKind]Descriptor
}

// NewResources builds a facade; a nil table selects DefaultDescriptors.
func NewResources(transport Transport, descriptors map[ResourceKind]Descriptor) *Resources {
	if descriptors == nil {
		descriptors = DefaultDescriptors
	}
	return &Resources{transport: transport, descriptors: descriptors}
}

// Descriptor looks up the descriptor for kind.
func (r *Resources) Descriptor(kind ResourceKind) (Descriptor, error) {
	d, ok := r.descriptors[kind]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrUnknownResource, kind)
	}
	return d, nil
}

// Create POSTs payload to the kind's base path.
func (r *Resources) Create(ctx context.Context, kind ResourceKind, payload any) (*Response, error) {
	return r.Exchange(ctx, kind, ActionCreate, "", payload, nil)
}

// Update PUTs payload, replacing the whole record. Singletons ignore id.
func (r *Resources) Update(ctx context.Context, kind ResourceKind, id string, payload any) (*Response, error) {
	return r.Exchange(ctx, kind, ActionUpdate, id, payload, nil)
}

// Delete removes the record. A 404 is always NotFound, never success.
func (r *Resources) Delete(ctx context.Context, kind ResourceKind, id string) error {
	_, err := r.Exchange(ctx, kind, ActionDelete, id, nil, nil)
	return err
}

// Get reads one record, or the full collection when id is empty and the kind
// is id-addressed.
func (r *Resources) Get(ctx context.Context, kind ResourceKind, id string) (*Response, error) {
	d, err := r.Descriptor(kind)
	if err != nil {
		return nil, err
	}
	action := ActionReadOne
	if d.IDRequired && id == "" {
		action = ActionReadCollection
	}
	return r.Exchange(ctx, kind, action, id, nil, nil)
}

// Exchange issues the request for action and classifies the response. It is
// exported for callers that need extra headers, such as binary uploads.
func (r *Resources) Exchange(ctx context.Context, kind ResourceKind, action Action, id string, payload any, headers map[string]string) (*Response, error) {
	d, err := r.Descriptor(kind)
	if err != nil {
		return nil, err
	}
	if d.IDRequired && id == "" && (action == ActionUpdate || action == ActionDelete || action == ActionReadOne) {
		return nil, fmt.Errorf("%s %s: %w", action, kind, ErrIDRequired)
	}
	if !d.IDRequired {
		id = ""
	}

	resourceName := string(kind)
	if id != "" {
		resourceName += " " + id
	}

	resp, err := r.transport.Do(ctx, Request{
		Method:  methodFor(action),
		Path:    d.Path(id),
		Body:    payload,
		Headers: headers,
	})
	if err != nil {
		return nil, annotate(err, resourceName)
	}

	if err := Classify(d.Table(action), resp.Status, resp.String()); err != nil {
		utils.WithComponent("resources").Debug("operation failed",
			zap.String(utils.FieldKind, string(kind)),
			zap.String("action", action.String()),
			zap.Int(utils.FieldStatusCode, resp.Status))
		return nil, annotate(err, resourceName)
	}
	return resp, nil
}

func methodFor(action Action) string {
	switch action {
	case ActionCreate:
		return http.MethodPost
	case ActionUpdate, ActionSettingsUpload:
		return http.MethodPut
	case ActionDelete:
		return http.MethodDelete
	default:
		return http.MethodGet
	}
}

// annotate stamps the resource name on a classified error.
func annotate(err error, resource string) error {
	var e *Error
	if errors.As(err, &e) && e.Resource == "" {
		e.Resource = resource
	}
	return err
}

// decode unmarshals a successful response body into v.
func decode(resp *Response, v any) error {
	if err := json.Unmarshal(resp.Content, v); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

// dataEnvelope is the {"data": ...} wrapper used by the service/local API.
type dataEnvelope[T any] struct {
	Data T `json:"data"`
}
