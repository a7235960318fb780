// Package clustervm ties request validation and command dispatch together
// into the single entry point used by the command-line layer.
package clustervm

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/seapath/cluster-vm/api/v1alpha1"
	"github.com/seapath/cluster-vm/internal/cluster"
	"github.com/seapath/cluster-vm/internal/dispatch"
	"github.com/seapath/cluster-vm/internal/validate"
)

// Run validates req and dispatches it to the cluster manager. On failure the
// returned Result is empty and the error is one of the validation errors or
// a dispatch.CapabilityError; no capability call is made unless validation
// passed.
func Run(ctx context.Context, m cluster.Manager, req *v1alpha1.Request) (v1alpha1.Result, error) {
	req.EnsureUID()

	log.Printf("Validating request %s (command '%s')...", req.UID, req.Command)
	validated, err := validate.Request(req)
	if err != nil {
		log.Printf("Request %s rejected: %v", req.UID, err)
		return v1alpha1.Result{}, err
	}

	log.Printf("Dispatching request %s...", req.UID)
	result, err := dispatch.Dispatch(ctx, m, validated)
	if err != nil {
		log.Printf("Request %s failed: %v", req.UID, err)
		return v1alpha1.Result{}, err
	}

	log.Printf("Request %s completed", req.UID)
	return result, nil
}

// Respond maps the outcome of Run into the uniform response envelope. A nil
// error produces a success envelope carrying result; any error produces a
// failure envelope with the error message verbatim. Cluster failures
// additionally name the failing command in the exception field.
func Respond(result v1alpha1.Result, err error) *v1alpha1.Response {
	if err == nil {
		return &v1alpha1.Response{Result: result}
	}

	resp := &v1alpha1.Response{
		Failed: true,
		Msg:    err.Error(),
	}
	var capErr *dispatch.CapabilityError
	if errors.As(err, &capErr) {
		resp.Exception = fmt.Sprintf("command `%s`: %v", capErr.Command, capErr.Err)
	}
	return resp
}
