package app

// Caller-facing error messages for the design generation route. The logged
// detail may exceed these; the caller always gets the classified short form.
const (
	msgKeyNotConfigured    = "provider API key not configured"
	msgInvalidBody         = "invalid request body"
	msgDescriptionRequired = "description is required"
	msgRateLimited         = "rate limit exceeded, try again later"
	msgContentPolicy       = "content policy violation; modify your request"
	msgGenerationFailed    = "error generating image with provider"
	msgMethodNotAllowed    = "method not allowed"
	msgUnexpected          = "an unexpected error occurred"
)

type errCtx struct {
	Code  int
	Title string
	Msg   string
}

func get404() errCtx {
	return errCtx{
		Code:  404,
		Title: "Page not found",
		Msg:   "Sorry, we couldn't find the page you were looking for.",
	}
}

func get500() errCtx {
	return errCtx{
		Code:  500,
		Title: "Internal server error",
		Msg:   "Sorry, there was an internal server error.",
	}
}
