package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>Atelier</title>
<style>
body{font-family:system-ui,sans-serif;margin:0;background:#faf8f5;color:#1c1c1c}
main{max-width:640px;margin:0 auto;padding:2rem 1rem}
h1{font-weight:600;letter-spacing:-.02em}
textarea{width:100%;min-height:7rem;padding:.75rem;border:1px solid #d8d2c8;border-radius:.5rem;font:inherit;box-sizing:border-box}
label{display:block;margin:1rem 0 .25rem;font-size:.875rem;color:#555}
button{margin-top:1rem;padding:.6rem 1.5rem;border:0;border-radius:.5rem;background:#1c1c1c;color:#fff;font:inherit;cursor:pointer}
button:disabled{opacity:.5;cursor:wait}
#gallery img{width:100%;border-radius:.75rem;margin-top:1rem}
#status{margin-top:1rem;font-size:.875rem}
#status.error{color:#b4231f}
</style>
</head>
<body>
<main>
<h1>Atelier</h1>
<p>Describe a garment and we generate a studio-quality product shot of it. Optionally add a reference image for style guidance.</p>
<form id="design-form">
<label for="description">Description</label>
<textarea id="description" name="description" placeholder="e.g. a double-breasted camel coat with horn buttons" required></textarea>
<label for="reference">Reference image (optional)</label>
<input type="file" id="reference" name="reference" accept="image/*"/>
<button type="submit" id="submit">Generate design</button>
</form>
<p id="status"></p>
<div id="gallery"></div>
</main>
<script>
const form = document.getElementById('design-form');
const status = document.getElementById('status');
const gallery = document.getElementById('gallery');
const submit = document.getElementById('submit');

function toDataUrl(file) {
  return new Promise((resolve, reject) => {
    const reader = new FileReader();
    reader.onload = () => resolve(reader.result);
    reader.onerror = reject;
    reader.readAsDataURL(file);
  });
}

form.addEventListener('submit', async (e) => {
  e.preventDefault();
  status.textContent = 'Generating…';
  status.className = '';
  gallery.innerHTML = '';
  submit.disabled = true;
  try {
    const file = document.getElementById('reference').files[0];
    const referenceImage = file ? await toDataUrl(file) : null;
    const res = await fetch('/api/designs', {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify({description: document.getElementById('description').value, referenceImage})
    });
    const payload = await res.json();
    if (!res.ok) throw new Error(payload.error);
    status.textContent = '';
    for (const design of payload.designs) {
      const img = document.createElement('img');
      img.src = design.url;
      img.alt = design.revised_prompt || 'generated design';
      gallery.appendChild(img);
    }
  } catch (err) {
    status.textContent = err.message;
    status.className = 'error';
  } finally {
    submit.disabled = false;
  }
});
</script>
</body>
</html>`

func Index() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, indexHTML)
		return err
	})
}

func Error(title string, msg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/><title>%s</title></head><body><main><h1>%s</h1><p>%s</p><p><a href="/">Back to the studio</a></p></main></body></html>`,
			templ.EscapeString(title), templ.EscapeString(title), templ.EscapeString(msg))
		return err
	})
}
