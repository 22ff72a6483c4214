package filesystem

// File - a file content with metadata.
type File struct {
	Path    string
	Desc    string
	Content string
}

func NewFile(path, content string) *File {
	return &File{Path: path, Content: content}
}

func (f *File) SetDescription(desc string) *File {
	f.Desc = desc
	return f
}
