package prompt

import (
	"fmt"
	"strings"
)

const referenceGuidance = `Use the uploaded reference image as style inspiration. Match the following aspects of the reference image:
1. Overall style and aesthetic
2. Silhouette and proportions
3. Fabric texture and draping
4. Design elements and details
5. Photography style
However, incorporate the specific requirements from the description above rather than copying the reference design outright.`

const photographySpec = `The image should have a clean neutral background, studio lighting, high resolution, a professional fashion photography style, multiple angles where possible, and be photorealistic and HD. The final image should look like a high-end e-commerce product photo.`

// Build turns a validated design description into the finished generation
// prompt. Deterministic: no randomness, no external state. The caller is
// responsible for rejecting empty descriptions before calling.
func Build(description string, hasReferenceImage bool) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Create a professional fashion design based on the following description: %s", description))
	b.WriteString("\n\n")

	if hasReferenceImage {
		b.WriteString(referenceGuidance)
		b.WriteString("\n\n")
	}

	b.WriteString(photographySpec)

	return b.String()
}
