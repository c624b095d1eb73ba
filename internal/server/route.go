package server

import "net/http"

// Method is the closed set of methods the dispatcher distinguishes.
type Method int

const (
	MethodOther Method = iota
	MethodOptions
	MethodGet
	MethodPost
)

func (m Method) String() string {
	switch m {
	case MethodOptions:
		return http.MethodOptions
	case MethodGet:
		return http.MethodGet
	case MethodPost:
		return http.MethodPost
	default:
		return "OTHER"
	}
}

func parseMethod(method string) Method {
	switch method {
	case http.MethodOptions:
		return MethodOptions
	case http.MethodGet:
		return MethodGet
	case http.MethodPost:
		return MethodPost
	default:
		return MethodOther
	}
}

// Route is the result of matching a request against the resource path.
type Route struct {
	Method      Method
	PathMatched bool
}

func resolveRoute(r *http.Request, resourcePath string) Route {
	return Route{
		Method:      parseMethod(r.Method),
		PathMatched: r.URL.Path == resourcePath,
	}
}
