package handlers

import "Portfolio/internal/service"

// resourceMessages — тексты ответов для одной коллекции.
type resourceMessages struct {
	required     map[string]string
	deniedCreate string
	deniedUpdate string
	deniedDelete string
	created      string
	deleted      string
	notFound     string
}

var blogMessages = resourceMessages{
	required: map[string]string{
		service.FieldTitle:    "Blog post title is required!",
		service.FieldSubtitle: "Blog post sub-title is required!",
		service.FieldLink:     "Blog post link is required!",
		service.FieldImage:    "Blog post image is required!",
	},
	deniedCreate: "You are not authorization to post.",
	deniedUpdate: "You are not authorization to Update.",
	deniedDelete: "You are not authorization to delete.",
	created:      "Blog post created successfully",
	deleted:      "Blog post deleted successfully",
	notFound:     "Blog post not found",
}

var projectMessages = resourceMessages{
	required: map[string]string{
		service.FieldTitle: "Projects title is required!",
		service.FieldLink:  "Projects link is required!",
		service.FieldImage: "Projects image is required!",
	},
	deniedCreate: "You are not authorization to post.",
	deniedUpdate: "You are not authorization to update.",
	deniedDelete: "You are not authorization to delete.",
	created:      "Project created successfully",
	deleted:      "Project deleted successfully",
	notFound:     "Project not found",
}
