package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"k8s.io/apimachinery/pkg/util/validation"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the region fields collected at registration.
func (r Region) Validate() error {
	return validate.Struct(r)
}

// Validate checks the host and its placement.
func (h Host) Validate() error {
	if err := validate.Struct(h); err != nil {
		return err
	}

	switch p := h.Placement.(type) {
	case nil:
		return errors.New("host has no placement")
	case KVMPlacement:
		return validate.Struct(p)
	case KubernetesPlacement:
		if err := validate.Struct(p); err != nil {
			return err
		}
		if p.ClusterName == "" {
			return nil
		}
		if errs := validation.IsDNS1123Subdomain(p.ClusterName); len(errs) > 0 {
			return fmt.Errorf("invalid cluster name %q: %s", p.ClusterName, strings.Join(errs, "; "))
		}
		return nil
	default:
		return fmt.Errorf("unknown host placement %T", p)
	}
}
