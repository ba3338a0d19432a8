package validation

type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

func Ok() Result {
	return Result{Valid: true, Errors: []string{}}
}

func Fail(errors []string) Result {
	return Result{Valid: false, Errors: errors}
}

func resultOf(errors []string) Result {
	if len(errors) == 0 {
		return Ok()
	}
	return Fail(errors)
}
