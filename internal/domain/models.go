package domain

// ItemKind identifies the variant of a feed item
type ItemKind string

const (
	KindText  ItemKind = "text"
	KindImage ItemKind = "image"
)

// FeedItem is a single entry of the home feed.
// Implemented by TextItem and ImageItem only.
type FeedItem interface {
	ItemID() int
	Kind() ItemKind
	// SearchText returns the fields a query is matched against
	SearchText() []string
}

// TextItem is a feed card with a title and a description
type TextItem struct {
	ID          int
	Title       string
	Description string
}

func (t TextItem) ItemID() int          { return t.ID }
func (t TextItem) Kind() ItemKind       { return KindText }
func (t TextItem) SearchText() []string { return []string{t.Title, t.Description} }

// ImageItem is a feed card showing an image with a caption
type ImageItem struct {
	ID       int
	ImageURL string
	Caption  string
}

func (i ImageItem) ItemID() int          { return i.ID }
func (i ImageItem) Kind() ItemKind       { return KindImage }
func (i ImageItem) SearchText() []string { return []string{i.Caption} }

// ImageSource selects where an image is picked from
type ImageSource string

const (
	SourceCamera  ImageSource = "camera"
	SourceGallery ImageSource = "gallery"
)

// ImageRef points at a picked (and possibly cropped) image
type ImageRef struct {
	ID     string
	Path   string
	Source ImageSource
	Width  int
	Height int
}

// Product is a single image-search result
type Product struct {
	ID       int
	ImageURL string
	Title    string
	Source   string // store name, e.g. Amazon
	Price    string
}
