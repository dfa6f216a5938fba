package api

import "context"

// VideoUpload describes one video post fanned out to multiple platforms.
// Video is the path to a local file or an http(s) URL.
type VideoUpload struct {
	User      string
	Title     string
	Platforms []Platform
	Video     string

	Common  CommonOptions
	Options PlatformOptions
}

// BuildForm validates the request and renders the wire payload. It is
// exported so callers can preview the exact fields of a dry run.
func (r VideoUpload) BuildForm() (*Form, error) {
	if err := validateTargets(kindVideo, r.User, r.Title, r.Platforms); err != nil {
		return nil, err
	}
	f := &Form{}
	if err := f.AttachMedia("video", r.Video); err != nil {
		return nil, err
	}
	applyTargets(f, r.User, r.Title, r.Platforms)
	r.Common.apply(f)
	r.Options.apply(f, kindVideo, r.Platforms)
	return f, nil
}

// Video publishes a video post. Returns the vendor's raw response, which for
// synchronous uploads carries per-platform results and for async/scheduled
// uploads a request_id or job_id.
func (s UploadsService) Video(ctx context.Context, req VideoUpload) (Result, error) {
	form, err := req.BuildForm()
	if err != nil {
		return nil, err
	}
	var result Result
	if err := s.postForm(ctx, "/upload", form, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// PhotosUpload describes one photo post (1-10 photos) fanned out to multiple
// platforms. Each photo is a local path or an http(s) URL; the two kinds may
// be mixed in one request.
type PhotosUpload struct {
	User      string
	Title     string
	Platforms []Platform
	Photos    []string

	// FirstCommentMedia attaches media to the first comment where the
	// platform supports it.
	FirstCommentMedia []string

	Common  CommonOptions
	Options PlatformOptions
}

// BuildForm validates the request and renders the wire payload.
func (r PhotosUpload) BuildForm() (*Form, error) {
	if err := validateTargets(kindPhotos, r.User, r.Title, r.Platforms); err != nil {
		return nil, err
	}
	if len(r.Photos) == 0 {
		return nil, NewMissingFieldError("photos")
	}
	f := &Form{}
	for _, photo := range r.Photos {
		if err := f.AttachMedia("photos[]", photo); err != nil {
			return nil, err
		}
	}
	for _, media := range r.FirstCommentMedia {
		if err := f.AttachMedia("first_comment_media[]", media); err != nil {
			return nil, err
		}
	}
	applyTargets(f, r.User, r.Title, r.Platforms)
	r.Common.apply(f)
	r.Options.apply(f, kindPhotos, r.Platforms)
	return f, nil
}

// Photos publishes a photo post.
func (s UploadsService) Photos(ctx context.Context, req PhotosUpload) (Result, error) {
	form, err := req.BuildForm()
	if err != nil {
		return nil, err
	}
	var result Result
	if err := s.postForm(ctx, "/upload_photos", form, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// TextUpload describes one text post fanned out to the text-capable
// platforms.
type TextUpload struct {
	User      string
	Title     string
	Platforms []Platform

	// LinkURL attaches a link to the post on the platforms that accept a
	// generic link (LinkedIn, Facebook, Bluesky); the per-platform link
	// options override it.
	LinkURL string

	// FirstCommentMedia attaches media to the first comment where the
	// platform supports it.
	FirstCommentMedia []string

	Common  CommonOptions
	Options PlatformOptions
}

// BuildForm validates the request and renders the wire payload.
func (r TextUpload) BuildForm() (*Form, error) {
	if err := validateTargets(kindText, r.User, r.Title, r.Platforms); err != nil {
		return nil, err
	}
	f := &Form{}
	for _, media := range r.FirstCommentMedia {
		if err := f.AttachMedia("first_comment_media[]", media); err != nil {
			return nil, err
		}
	}
	applyTargets(f, r.User, r.Title, r.Platforms)
	r.Common.apply(f)
	f.Set("link_url", r.LinkURL)
	r.Options.apply(f, kindText, r.Platforms)
	return f, nil
}

// Text publishes a text post.
func (s UploadsService) Text(ctx context.Context, req TextUpload) (Result, error) {
	form, err := req.BuildForm()
	if err != nil {
		return nil, err
	}
	var result Result
	if err := s.postForm(ctx, "/upload_text", form, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// DocumentUpload describes one document post. Documents are LinkedIn only;
// the platform list is fixed server-side and is not configurable.
type DocumentUpload struct {
	User     string
	Title    string
	Document string // local path or http(s) URL, PDF/DOC/DOCX/PPT/PPTX

	Common   CommonOptions
	LinkedIn *LinkedInOptions
}

// BuildForm validates the request and renders the wire payload.
func (r DocumentUpload) BuildForm() (*Form, error) {
	platforms := []Platform{LinkedIn}
	if err := validateTargets(kindDocument, r.User, r.Title, platforms); err != nil {
		return nil, err
	}
	f := &Form{}
	if err := f.AttachMedia("document", r.Document); err != nil {
		return nil, err
	}
	applyTargets(f, r.User, r.Title, platforms)
	r.Common.apply(f)
	r.LinkedIn.apply(f, kindDocument)
	return f, nil
}

// Document publishes a document post to LinkedIn.
func (s UploadsService) Document(ctx context.Context, req DocumentUpload) (Result, error) {
	form, err := req.BuildForm()
	if err != nil {
		return nil, err
	}
	var result Result
	if err := s.postForm(ctx, "/upload_document", form, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// applyTargets writes the identity fields shared by every upload variant.
// Media fields come first in the form, matching the vendor examples.
func applyTargets(f *Form, user, title string, platforms []Platform) {
	f.Add("user", user)
	f.Set("title", title)
	for _, p := range platforms {
		f.Add("platform[]", string(p))
	}
}
