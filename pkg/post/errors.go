package post

import "errors"

var (
	// ErrInvalidFrontMatter indicates an unterminated or undecodable front matter block.
	ErrInvalidFrontMatter = errors.New("post: invalid front matter")

	// ErrNoTitle indicates the post has neither a front matter title nor a level-1 heading.
	ErrNoTitle = errors.New("post: no title")

	// ErrRender indicates the body could not be rendered to HTML.
	ErrRender = errors.New("post: render failed")
)
