package data

import "fmt"

const (
	childStreamID = "streamId"
	childFilename = "filename"
	childFilesize = "filesize"
	childMimeType = "mimeType"
)

// ResourceLink is a group that references a binary resource (a stream) by
// id, filename, size, and media type. It always carries the four mandatory
// atomic children. Like RecordLink it tracks declared actions and, in
// addition, holds fully resolved ActionLink descriptors keyed by action.
type ResourceLink struct {
	Group
	actions     map[Action]struct{}
	actionLinks map[Action]ActionLink
}

// NewResourceLink creates a resource link with the four mandatory children.
func NewResourceLink(name, streamID, filename, filesize, mimeType string) *ResourceLink {
	l := &ResourceLink{Group: Group{element: element{name: name}}}
	l.AddChild(NewAtomic(childStreamID, streamID))
	l.AddChild(NewAtomic(childFilename, filename))
	l.AddChild(NewAtomic(childFilesize, filesize))
	l.AddChild(NewAtomic(childMimeType, mimeType))
	return l
}

// ResourceLinkFromGroup adopts an existing group as a resource link. A group
// missing any of the four mandatory atomic children fails immediately.
func ResourceLinkFromGroup(g *Group) (*ResourceLink, error) {
	for _, name := range []string{childStreamID, childFilename, childFilesize, childMimeType} {
		if _, err := g.FirstAtomicValueWithName(name); err != nil {
			return nil, fmt.Errorf("group %q is not a resource link: %w", g.NameInData(), err)
		}
	}
	return &ResourceLink{Group: *g}, nil
}

func (l *ResourceLink) StreamID() string {
	v, _ := l.FirstAtomicValueWithName(childStreamID)
	return v
}

func (l *ResourceLink) Filename() string {
	v, _ := l.FirstAtomicValueWithName(childFilename)
	return v
}

func (l *ResourceLink) Filesize() string {
	v, _ := l.FirstAtomicValueWithName(childFilesize)
	return v
}

func (l *ResourceLink) MimeType() string {
	v, _ := l.FirstAtomicValueWithName(childMimeType)
	return v
}

// AddAction declares that the resource supports an action.
func (l *ResourceLink) AddAction(a Action) {
	if l.actions == nil {
		l.actions = make(map[Action]struct{})
	}
	l.actions[a] = struct{}{}
}

func (l *ResourceLink) HasAction(a Action) bool {
	_, ok := l.actions[a]
	return ok
}

// AddActionLink stores a resolved descriptor for an action, replacing any
// previous descriptor for the same action.
func (l *ResourceLink) AddActionLink(link ActionLink) {
	if l.actionLinks == nil {
		l.actionLinks = make(map[Action]ActionLink)
	}
	l.actionLinks[link.Action] = link
}

// ActionLinkFor returns the stored descriptor for an action, if present.
func (l *ResourceLink) ActionLinkFor(a Action) (ActionLink, bool) {
	link, ok := l.actionLinks[a]
	return link, ok
}
