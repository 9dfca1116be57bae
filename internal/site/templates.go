package site

// pageTemplate is the Go html/template for the single page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.SiteName}}</title>
  <meta name="description" content="{{.Hero.Tagline}}">
  {{if .BaseURL}}<link rel="canonical" href="{{.BaseURL}}">{{end}}
  <link rel="stylesheet" href="style.css">
</head>
<body data-live="{{.Live}}">
  <header class="app-bar{{if not .HeaderVisible}} app-bar-hidden{{end}}" id="app-bar">
    <div class="toolbar">
      <div class="brand">{{.SiteName}}</div>
      <nav class="nav-links">
        {{range .Navigation}}<a href="#{{.SectionID}}" class="nav-button" data-action="navigate" data-section="{{.SectionID}}">{{.Label}}</a>
        {{end}}<a href="?privacy=open" class="nav-button" data-action="open_privacy">Privacy Policy</a>
      </nav>
    </div>
  </header>

  <section id="hero" class="hero" style="background-image: url('{{.Hero.Image}}')">
    <div class="hero-inner">
      <h1>{{.Hero.Title}}</h1>
      <p class="tagline">{{.Hero.Tagline}}</p>
      <a href="#contact" class="button button-primary" data-action="navigate" data-section="contact">{{.Hero.CallToAction}}</a>
    </div>
  </section>

  <section id="about" class="section container">
    <h2>{{.About.Title}}</h2>
    <div class="about">
      <div class="about-text">{{.AboutHTML}}</div>
      {{if .About.Image}}<div class="card about-image"><img src="{{.About.Image}}" alt="{{.About.ImageAlt}}" loading="lazy"></div>{{end}}
    </div>
  </section>

  <section id="menu" class="section section-muted">
    <div class="container">
      <h2 class="centered">Our Menu</h2>
      <div class="grid">
        {{range .Categories}}<a href="?menu={{.Key}}" class="card menu-card" data-action="open_menu" data-category="{{.Key}}">
          <img src="{{.Image}}" alt="{{.Label}}" loading="lazy">
          <div class="card-content">
            <h3>{{.Label}}</h3>
            <p>{{.Blurb}}</p>
          </div>
        </a>
        {{end}}
      </div>
    </div>
  </section>

  {{range .MenuDialogs}}<div class="dialog-backdrop menu-dialog" id="dialog-{{.Key}}" data-category="{{.Key}}" data-close="close_menu"{{if not .Open}} hidden{{end}}>
    <div class="dialog" role="dialog" aria-modal="true" aria-labelledby="dialog-{{.Key}}-title">
      <div class="dialog-title">
        <h3 id="dialog-{{.Key}}-title">{{.Title}}</h3>
        <a href="./" class="dialog-close" data-action="close_menu" aria-label="Close">&times;</a>
      </div>
      <div class="dialog-content">
        {{range .Items}}<div class="dish">
          <h4>{{.Name}}</h4>
          <p class="dish-description">{{.Description}}</p>
          <p class="dish-price">{{.Price}}</p>
        </div>
        {{end}}
      </div>
    </div>
  </div>
  {{end}}

  <section id="gallery" class="section container">
    <h2 class="centered">Gallery</h2>
    <div class="grid">
      {{range .Gallery}}<div class="card gallery-tile"><img src="{{.Src}}" alt="{{.Alt}}" loading="lazy"></div>
      {{end}}
    </div>
  </section>

  <section id="testimonials" class="section section-muted">
    <div class="container">
      <h2 class="centered">What Our Customers Say</h2>
      <div class="grid">
        {{range .Testimonials}}<div class="card testimonial">
          <div class="testimonial-header">
            <img class="avatar" src="{{.Avatar}}" alt="{{.Name}}" loading="lazy">
            <div>
              <h4>{{.Name}}</h4>
              <span class="rating" aria-label="{{.Rating}} out of 5">{{stars .Rating}}</span>
            </div>
          </div>
          <p class="quote">"{{.Quote}}"</p>
        </div>
        {{end}}
      </div>
    </div>
  </section>

  <section id="contact" class="section section-dark">
    <div class="container contact">
      <div>
        <h2>Contact Us</h2>
        <p>{{.Contact.Address}}</p>
        <p>Phone: {{.Contact.Phone}}</p>
        <p>Email: <a href="mailto:{{.Contact.Email}}">{{.Contact.Email}}</a></p>
        <p>Hours: {{.Contact.Hours}}</p>
        <a href="?privacy=open" class="link-button" data-action="open_privacy">Privacy Policy</a>
      </div>
      <div>
        <h3>Follow Us</h3>
        {{range .Contact.Social}}<p>{{.Network}}: {{.Handle}}</p>
        {{end}}
      </div>
    </div>
  </section>

  <div class="dialog-backdrop" id="privacy-dialog" data-close="close_privacy"{{if not .PrivacyOpen}} hidden{{end}}>
    <div class="dialog" role="dialog" aria-modal="true" aria-labelledby="privacy-dialog-title">
      <div class="dialog-title">
        <h3 id="privacy-dialog-title">{{.Privacy.Title}}</h3>
        <a href="./" class="dialog-close" data-action="close_privacy" aria-label="Close">&times;</a>
      </div>
      <div class="dialog-content prose">{{.PrivacyHTML}}</div>
    </div>
  </div>

  <script src="script.js"></script>
</body>
</html>
`

// cssContent is the stylesheet written next to index.html.
const cssContent = `/* ============ Variables ============ */
:root {
  --bg: #ffffff;
  --bg-muted: #f5f5f5;
  --bg-dark: #222222;
  --text: #212121;
  --text-secondary: #666666;
  --accent: #1976d2;
  --accent-secondary: #9c27b0;
  --bar-bg: rgba(0, 0, 0, 0.8);
  --radius: 6px;
  --shadow: 0 2px 6px rgba(0,0,0,0.12);
  --shadow-lg: 0 8px 24px rgba(0,0,0,0.18);
  --container: 1200px;
}

* { box-sizing: border-box; }

html { scroll-behavior: smooth; }

body {
  margin: 0;
  font-family: "Roboto", -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.6;
}

body.dialog-open { overflow: hidden; }

img { max-width: 100%; display: block; }

a { color: var(--accent); }

/* ============ App bar ============ */
.app-bar {
  position: fixed;
  top: 0;
  left: 0;
  right: 0;
  z-index: 10;
  background: var(--bar-bg);
  color: #fff;
  transition: transform 0.25s ease;
}

.app-bar-hidden { transform: translateY(-100%); }

.toolbar {
  display: flex;
  align-items: center;
  min-height: 64px;
  padding: 0 24px;
}

.brand {
  flex-grow: 1;
  font-size: 1.25rem;
  font-weight: 600;
}

.nav-links { display: flex; gap: 8px; flex-wrap: wrap; }

.nav-button {
  color: inherit;
  text-decoration: none;
  text-transform: uppercase;
  font-size: 0.875rem;
  font-weight: 500;
  padding: 6px 8px;
  border-radius: 4px;
}

.nav-button:hover { background: rgba(255, 255, 255, 0.1); }

/* ============ Layout ============ */
.container {
  max-width: var(--container);
  margin: 0 auto;
  padding: 0 24px;
}

.section { padding: 64px 0; scroll-margin-top: 64px; }
.section.container { padding: 64px 24px; }
.section-muted { background: var(--bg-muted); }
.section-dark { background: var(--bg-dark); color: #fff; padding: 48px 0; }
.section-dark a { color: #90caf9; }

h2 { font-size: 2.125rem; font-weight: 600; margin: 0 0 16px; }
.centered { text-align: center; }

.grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(300px, 1fr));
  gap: 24px;
  padding: 16px 0;
}

/* ============ Hero ============ */
.hero {
  position: relative;
  min-height: 100vh;
  display: flex;
  align-items: center;
  justify-content: center;
  background-size: cover;
  background-position: center;
  color: #fff;
  text-shadow: 0 2px 8px rgba(0,0,0,0.7);
  text-align: center;
}

.hero::before {
  content: "";
  position: absolute;
  inset: 0;
  background: rgba(0,0,0,0.5);
}

.hero-inner { position: relative; z-index: 1; }
.hero h1 { font-size: 3.75rem; font-weight: 700; margin: 0 0 8px; }
.tagline { font-size: 1.5rem; margin: 0 0 16px; }

.button {
  display: inline-block;
  padding: 8px 22px;
  border-radius: 4px;
  font-size: 0.9375rem;
  font-weight: 500;
  text-transform: uppercase;
  text-decoration: none;
  text-shadow: none;
  box-shadow: var(--shadow);
}

.button-primary { background: var(--accent-secondary); color: #fff; }

/* ============ About ============ */
.about { display: flex; gap: 32px; align-items: center; }
.about-text, .about-image { flex: 1; }
.about-text p { color: var(--text-secondary); }
.about-image img { height: 400px; width: 100%; object-fit: cover; }

/* ============ Cards ============ */
.card {
  background: #fff;
  border-radius: var(--radius);
  box-shadow: var(--shadow);
  overflow: hidden;
}

.menu-card {
  color: inherit;
  text-decoration: none;
  cursor: pointer;
  transition: transform 0.2s ease, box-shadow 0.2s ease;
}

.menu-card:hover { transform: translateY(-4px); box-shadow: var(--shadow-lg); }
.menu-card img { height: 200px; width: 100%; object-fit: cover; }
.card-content { padding: 16px; }
.card-content h3 { margin: 0 0 8px; font-weight: 500; }
.card-content p { margin: 0; color: var(--text-secondary); font-size: 0.875rem; }

.gallery-tile img { height: 250px; width: 100%; object-fit: cover; }

.testimonial { padding: 24px; }
.testimonial-header { display: flex; align-items: center; gap: 16px; margin-bottom: 12px; }
.testimonial-header h4 { margin: 0; }
.avatar { width: 56px; height: 56px; border-radius: 50%; object-fit: cover; }
.rating { color: #faaf00; letter-spacing: 2px; }
.quote { font-style: italic; color: var(--text-secondary); margin: 0; }

/* ============ Contact ============ */
.contact { display: flex; gap: 32px; }
.contact > div { flex: 1; }

.link-button {
  background: none;
  border: none;
  padding: 0;
  text-decoration: underline;
  cursor: pointer;
  font: inherit;
}

/* ============ Dialogs ============ */
.dialog-backdrop {
  position: fixed;
  inset: 0;
  z-index: 20;
  display: flex;
  align-items: center;
  justify-content: center;
  background: rgba(0,0,0,0.5);
  padding: 32px;
}

.dialog-backdrop[hidden] { display: none; }

.dialog {
  background: #fff;
  border-radius: var(--radius);
  box-shadow: var(--shadow-lg);
  width: 100%;
  max-width: 900px;
  max-height: calc(100vh - 64px);
  display: flex;
  flex-direction: column;
}

.dialog-title {
  position: relative;
  padding: 16px 56px 16px 24px;
}

.dialog-title h3 { margin: 0; font-size: 1.25rem; font-weight: 500; }

.dialog-close {
  position: absolute;
  right: 8px;
  top: 8px;
  width: 40px;
  height: 40px;
  line-height: 40px;
  text-align: center;
  font-size: 1.5rem;
  color: var(--text-secondary);
  text-decoration: none;
  border-radius: 50%;
}

.dialog-close:hover { background: rgba(0,0,0,0.05); }

.dialog-content { padding: 0 24px 24px; overflow-y: auto; }

.dish { margin-bottom: 16px; padding: 16px; border-bottom: 1px solid #eee; }
.dish h4 { margin: 0; font-size: 1.25rem; font-weight: 500; }
.dish-description { margin: 4px 0 0; color: var(--text-secondary); font-size: 0.875rem; }
.dish-price { margin: 8px 0 0; color: var(--accent); font-weight: 500; }

.prose h2 { font-size: 1.25rem; margin: 24px 0 8px; }
.prose p, .prose li { color: var(--text-secondary); }

/* ============ Responsive ============ */
@media (max-width: 900px) {
  .nav-links { display: none; }
  .about, .contact { flex-direction: column; }
  .hero h1 { font-size: 2.5rem; }
}
`

// jsContent drives the toggles and section scrolling in the browser. When
// the page is served live it mirrors the server's session over /ws/ui;
// otherwise the same transitions run locally.
const jsContent = `(function() {
  "use strict";

  var body = document.body;
  var header = document.getElementById("app-bar");
  var live = body.getAttribute("data-live") === "true";
  var socket = null;

  // ===== State =====
  var state = {
    menu_dialog: "closed",
    selected_category: "",
    privacy_dialog: "closed",
    header_visible: !(header && header.classList.contains("app-bar-hidden"))
  };

  document.querySelectorAll(".menu-dialog").forEach(function(el) {
    if (!el.hidden) {
      state.menu_dialog = "open";
      state.selected_category = el.getAttribute("data-category");
    }
  });
  var privacyDialog = document.getElementById("privacy-dialog");
  if (privacyDialog && !privacyDialog.hidden) {
    state.privacy_dialog = "open";
  }

  function applyState(next) {
    state = next;
    document.querySelectorAll(".menu-dialog").forEach(function(el) {
      el.hidden = !(next.menu_dialog === "open" && el.getAttribute("data-category") === next.selected_category);
    });
    if (privacyDialog) {
      privacyDialog.hidden = next.privacy_dialog !== "open";
    }
    if (header) {
      header.classList.toggle("app-bar-hidden", !next.header_visible);
    }
    body.classList.toggle("dialog-open", next.menu_dialog === "open" || next.privacy_dialog === "open");
  }

  function scrollToSection(cmd) {
    var el = document.getElementById(cmd.section_id);
    if (el) {
      el.scrollIntoView({ behavior: cmd.behavior || "smooth", block: cmd.block || "start" });
    }
  }

  // ===== Local transitions (used when no socket is open) =====
  var local = {
    open_menu: function(msg) {
      if (!document.getElementById("dialog-" + msg.category)) return;
      state.menu_dialog = "open";
      state.selected_category = msg.category;
    },
    close_menu: function() {
      state.menu_dialog = "closed";
      state.selected_category = "";
    },
    open_privacy: function() { state.privacy_dialog = "open"; },
    close_privacy: function() { state.privacy_dialog = "closed"; },
    scroll: function(msg) { state.header_visible = msg.delta <= 0; },
    navigate: function(msg) {
      scrollToSection({ section_id: msg.section_id, behavior: "smooth", block: "start" });
    }
  };

  function send(msg) {
    if (socket && socket.readyState === WebSocket.OPEN) {
      socket.send(JSON.stringify(msg));
      return;
    }
    var handler = local[msg.type];
    if (handler) {
      handler(msg);
      applyState(state);
    }
  }

  // ===== Live connection =====
  function connect() {
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(proto + location.host + "/ws/ui");
    ws.onopen = function() { socket = ws; };
    ws.onmessage = function(ev) {
      var msg;
      try { msg = JSON.parse(ev.data); } catch (e) { return; }
      if (msg.type === "state") {
        applyState({
          menu_dialog: msg.state.menu_dialog,
          selected_category: msg.state.selected_category || "",
          privacy_dialog: msg.state.privacy_dialog,
          header_visible: msg.state.header_visible
        });
      } else if (msg.type === "scroll") {
        scrollToSection(msg);
      } else if (msg.type === "error" && window.console) {
        console.warn("ui:", msg.message);
      }
    };
    ws.onclose = function() {
      socket = null;
      setTimeout(connect, 2000);
    };
  }

  // ===== Clicks =====
  document.addEventListener("click", function(e) {
    var target = e.target.closest("[data-action]");
    if (target) {
      e.preventDefault();
      var action = target.getAttribute("data-action");
      var msg = { type: action };
      if (action === "navigate") msg.section_id = target.getAttribute("data-section");
      if (action === "open_menu") msg.category = target.getAttribute("data-category");
      send(msg);
      return;
    }
    // Clicking the backdrop outside a dialog closes it.
    if (e.target.classList && e.target.classList.contains("dialog-backdrop")) {
      send({ type: e.target.getAttribute("data-close") });
    }
  });

  document.addEventListener("keydown", function(e) {
    if (e.key !== "Escape") return;
    if (state.privacy_dialog === "open") {
      send({ type: "close_privacy" });
    } else if (state.menu_dialog === "open") {
      send({ type: "close_menu" });
    }
  });

  // ===== Header hide on scroll =====
  var lastY = window.pageYOffset;
  var ticking = false;
  window.addEventListener("scroll", function() {
    if (ticking) return;
    ticking = true;
    window.requestAnimationFrame(function() {
      ticking = false;
      var y = window.pageYOffset;
      var delta = y - lastY;
      lastY = y;
      if ((delta <= 0) !== state.header_visible) {
        send({ type: "scroll", delta: delta });
      }
    });
  });

  // ===== Deep links =====
  if (!live) {
    var params = new URLSearchParams(location.search);
    if (params.get("menu")) send({ type: "open_menu", category: params.get("menu") });
    if (params.get("privacy") === "open") send({ type: "open_privacy" });
  } else {
    connect();
  }
})();
`
