package scoring

// Policy is a deployment-specific validation rule run by Validate after the
// token distribution check has passed.
//
// The extra argument is whatever the caller handed to Validate; the core
// check never reads it.
type Policy interface {
	Check(teams Teams, arena Arena, extra any) error
}

// PolicyFunc adapts a plain function to Policy.
type PolicyFunc func(teams Teams, arena Arena, extra any) error

// Check calls f.
func (f PolicyFunc) Check(teams Teams, arena Arena, extra any) error {
	return f(teams, arena, extra)
}
