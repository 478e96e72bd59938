// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package registry holds the claim list and the pending draft.

# Lifecycle

New seeds an empty store with one example claim (POL-10021, Vehicle, 1800,
Under Review) and starts with an empty draft:

	reg, err := registry.New(ctx, store.NewMemory(),
		registry.WithObserver(recorder),
	)

Claims are never edited, removed, or re-statused. The only way to add one is
submission.

# Draft Binding

The presentation layer binds form fields to the draft:

	reg.UpdateDraft(models.DraftUpdate{PolicyNumber: &policy})
	draft := reg.Draft()

# Submission

	claim, err := reg.SubmitDraft(ctx)

On success the claim is first in Claims, has status Submitted and a fresh
id, and the draft is empty again. On failure err is a *ValidationError and
neither the claims nor the draft change:

	var ve *registry.ValidationError
	if errors.As(err, &ve) {
		// ve.Field names the rule that failed
	}

# Validation Rules

Checked in order; the first failure is returned:

  - policy_number: present after trimming (ErrMissingPolicyNumber)
  - type: present (ErrMissingType) and a known type, ignoring case
    (ErrUnknownType); stored with its canonical label
  - amount: present (ErrMissingAmount), a finite number (ErrInvalidAmount),
    greater than zero (ErrNonPositiveAmount)

# Concurrency

Every operation that reads or writes the draft holds one mutex, including
the store insert, so concurrent HTTP handlers serialize cleanly.
*/
package registry
