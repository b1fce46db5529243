package contact

// Form is the mutable record behind one contact form interaction: the
// current snapshot plus the error set from the last rejected submit.
// A Form is owned by a single session and is not safe for concurrent use.
type Form struct {
	values Submission
	errors Result
}

// Outcome describes what a submit attempt produced.
type Outcome struct {
	Accepted bool
	Errors   Result
	// Notification is set only for an accepted submission.
	Notification *Notification
}

// NewForm returns an empty form.
func NewForm() *Form {
	return &Form{errors: make(Result)}
}

// NewFormFrom returns a form pre-filled with values.
func NewFormFrom(values Submission) *Form {
	return &Form{values: values, errors: make(Result)}
}

// Set merges value into the snapshot. The active error set is left as is
// until the next submit.
func (f *Form) Set(field Field, value string) {
	f.values = f.values.With(field, value)
}

// Values returns the current snapshot.
func (f *Form) Values() Submission {
	return f.values
}

// Errors returns a copy of the active error set.
func (f *Form) Errors() Result {
	return f.errors.clone()
}

// Submit validates the current snapshot. A rejected submit stores the
// errors and keeps the values. An accepted submit clears both and returns
// the success notification.
func (f *Form) Submit() Outcome {
	result := Validate(f.values)
	if !result.OK() {
		f.errors = result
		return Outcome{Errors: result.clone()}
	}

	f.values = Submission{}
	f.errors = make(Result)
	n := SuccessNotification()
	return Outcome{Accepted: true, Errors: make(Result), Notification: &n}
}
