package api

var pageTemplates = []string{
	"login",
	"dashboard",
	"not_found",
}
