package curriculum

func init() {
	c = buildCatalog(seedModules())
}

// seedModules returns the full course in teaching order.
func seedModules() []Module {
	return []Module{
		{
			ID: "transitions", Title: "Transitions", Icon: "🌊",
			Lessons: []Lesson{
				{ID: "intro-motion", Title: "Introduction to Motion", Subtitle: "Why animation matters for user experience", Icon: "✨",
					DefaultCSS: `.box {
  animation: float 3s ease-in-out infinite;
}

@keyframes float {
  0%, 100% { transform: translateY(0); }
  50% { transform: translateY(-20px); }
}`},
				{ID: "transition-property", Title: "transition-property & duration", Subtitle: "Controlling what animates and how long", Icon: "⏱️",
					DefaultCSS: `.box {
  background: #06b6d4;
  transition-property: transform;
  transition-duration: 0.3s;
}

.box:hover {
  transform: scale(1.2);
}`},
				{ID: "timing-function", Title: "transition-timing-function", Subtitle: "ease, linear, ease-in-out and more", Icon: "📈",
					DefaultCSS: `.box {
  background: #06b6d4;
  transition: transform 0.5s ease-out;
}

.box:hover {
  transform: translateX(100px);
}`},
				{ID: "transition-delay", Title: "transition-delay & shorthand", Subtitle: "Delaying animations and the shorthand syntax", Icon: "⏳",
					DefaultCSS: `.box {
  background: #06b6d4;
  transition: transform 0.3s ease-out 0.2s;
}

.box:hover {
  transform: rotate(180deg);
}`},
				{ID: "multi-transitions", Title: "Multiple Transitions", Subtitle: "Transitioning multiple properties at once", Icon: "🎭",
					DefaultCSS: `.box {
  background: #06b6d4;
  opacity: 0.7;
  transition:
    transform 0.3s ease-out,
    opacity 0.2s ease-in,
    background-color 0.3s ease;
}

.box:hover {
  transform: scale(1.2) rotate(10deg);
  opacity: 1;
  background-color: #0891b2;
}`},
				{ID: "challenge-hover-card", Title: "Challenge: Smooth Hover Card", Subtitle: "Build a beautiful hover effect", Icon: "🎮",
					PreviewHTML: FragmentCard,
					DefaultCSS: `/* Your task: Create a smooth hover effect */
.card {
  /* Add your transitions here */
}

.card:hover {
  /* Add your hover state here */
}`},
			},
		},
		{
			ID: "transforms", Title: "Transforms", Icon: "🔄",
			Lessons: []Lesson{
				{ID: "translate", Title: "translate()", Subtitle: "Moving elements in 2D space", Icon: "↔️",
					DefaultCSS: `.box {
  transition: transform 0.3s ease-out;
}

.box:hover {
  transform: translate(60px, -20px);
}`},
				{ID: "rotate", Title: "rotate()", Subtitle: "Spinning elements around", Icon: "🔁",
					DefaultCSS: `.box {
  transition: transform 0.6s ease-in-out;
}

.box:hover {
  transform: rotate(135deg);
}`},
				{ID: "scale", Title: "scale()", Subtitle: "Growing and shrinking elements", Icon: "🔍",
					DefaultCSS: `.box {
  transition: transform 0.3s ease-out;
}

.box:hover {
  transform: scale(1.5);
}`},
				{ID: "skew", Title: "skew()", Subtitle: "Slanting elements", Icon: "📐",
					DefaultCSS: `.box {
  transition: transform 0.3s ease-out;
}

.box:hover {
  transform: skew(20deg, 10deg);
}`},
				{ID: "combining-transforms", Title: "Combining Transforms", Subtitle: "Using multiple transforms together", Icon: "🎯",
					DefaultCSS: `.box {
  transition: transform 0.4s ease-out;
}

.box:hover {
  /* Order matters: transforms apply right to left */
  transform: translateX(50px) rotate(45deg) scale(1.2);
}`},
				{ID: "transform-origin", Title: "transform-origin", Subtitle: "Changing the pivot point", Icon: "📍",
					DefaultCSS: `.box {
  transform-origin: top left;
  transition: transform 0.5s ease-out;
}

.box:hover {
  transform: rotate(45deg);
}`},
				{ID: "challenge-card-flip", Title: "Challenge: 3D Card Flip", Subtitle: "Build a flipping card effect", Icon: "🎮",
					PreviewHTML: FragmentFlip,
					DefaultCSS: `/* Flip the card around the Y axis on hover */
.flip {
  width: 200px;
  height: 140px;
}

.flip-inner {
  position: relative;
  width: 100%;
  height: 100%;
}

.flip-front,
.flip-back {
  position: absolute;
  inset: 0;
}

.flip-back {
  /* Start the back face turned away */
}`},
			},
		},
		{
			ID: "keyframes", Title: "Keyframe Animations", Icon: "🎬",
			Lessons: []Lesson{
				{ID: "keyframes-basics", Title: "@keyframes Basics", Subtitle: "Creating custom animations", Icon: "🎞️",
					DefaultCSS: `@keyframes slide {
  from { transform: translateX(-80px); }
  to { transform: translateX(80px); }
}

.box {
  animation: slide 1.5s ease-in-out infinite alternate;
}`},
				{ID: "animation-name-duration", Title: "animation-name & duration", Subtitle: "Applying keyframe animations", Icon: "🏷️",
					DefaultCSS: `@keyframes pulse {
  from { transform: scale(1); }
  to { transform: scale(1.3); }
}

.box {
  animation-name: pulse;
  animation-duration: 0.8s;
  animation-iteration-count: infinite;
  animation-direction: alternate;
}`},
				{ID: "animation-timing", Title: "animation-timing-function", Subtitle: "Easing in keyframe animations", Icon: "📊",
					DefaultCSS: `@keyframes drop {
  from { transform: translateY(-100px); }
  to { transform: translateY(60px); }
}

.box {
  animation: drop 1.2s cubic-bezier(0.34, 1.56, 0.64, 1) infinite;
}`},
				{ID: "animation-delay-iteration", Title: "delay & iteration-count", Subtitle: "Timing and repetition", Icon: "🔄",
					DefaultCSS: `@keyframes spin {
  to { transform: rotate(360deg); }
}

.box {
  animation: spin 1s linear;
  animation-delay: 0.5s;
  animation-iteration-count: 3;
}`},
				{ID: "animation-direction", Title: "animation-direction", Subtitle: "reverse, alternate, and more", Icon: "↩️",
					DefaultCSS: `@keyframes slide {
  from { transform: translateX(-80px); }
  to { transform: translateX(80px); }
}

.box {
  animation: slide 1s ease-in-out infinite;
  animation-direction: alternate-reverse;
}`},
				{ID: "animation-fill-mode", Title: "animation-fill-mode", Subtitle: "forwards, backwards, both", Icon: "🎨",
					DefaultCSS: `@keyframes grow {
  from { transform: scale(0.5); opacity: 0.3; }
  to { transform: scale(1.4); opacity: 1; }
}

.box {
  animation: grow 1s ease-out 0.5s;
  animation-fill-mode: both;
}`},
				{ID: "animation-play-state", Title: "animation-play-state", Subtitle: "Pausing and playing animations", Icon: "⏯️",
					DefaultCSS: `@keyframes spin {
  to { transform: rotate(360deg); }
}

.box {
  animation: spin 2s linear infinite;
}

.box:hover {
  animation-play-state: paused;
}`},
				{ID: "animation-shorthand", Title: "Animation Shorthand", Subtitle: "The complete animation property", Icon: "📝",
					DefaultCSS: `@keyframes bounce {
  0%, 100% { transform: translateY(0); }
  50% { transform: translateY(-40px); }
}

.box {
  /* name duration timing-function delay iteration-count direction fill-mode */
  animation: bounce 0.8s ease-in-out 0s infinite normal both;
}`},
				{ID: "multi-step-keyframes", Title: "Multi-Step Keyframes", Subtitle: "0%, 25%, 50%, 75%, 100%", Icon: "📈",
					DefaultCSS: `@keyframes square {
  0%   { transform: translate(0, 0); }
  25%  { transform: translate(60px, 0); }
  50%  { transform: translate(60px, 60px); }
  75%  { transform: translate(0, 60px); }
  100% { transform: translate(0, 0); }
}

.box {
  animation: square 3s ease-in-out infinite;
}`},
				{ID: "challenge-bouncing-loader", Title: "Challenge: Bouncing Loader", Subtitle: "Build an animated loading indicator", Icon: "🎮",
					PreviewHTML: FragmentLoader,
					DefaultCSS: `/* Make the three dots bounce one after another */
.loader .dot {
}

.loader .dot:nth-child(2) {
}

.loader .dot:nth-child(3) {
}`},
			},
		},
		{
			ID: "timing", Title: "Timing Deep Dive", Icon: "⏰",
			Lessons: []Lesson{
				{ID: "cubic-bezier", Title: "cubic-bezier()", Subtitle: "Custom easing curves", Icon: "〰️",
					DefaultCSS: `.box {
  transition: transform 0.8s cubic-bezier(0.68, -0.55, 0.27, 1.55);
}

.box:hover {
  transform: translateX(120px);
}`},
				{ID: "steps", Title: "steps()", Subtitle: "Frame-by-frame animations", Icon: "🎯",
					DefaultCSS: `@keyframes move {
  to { transform: translateX(160px); }
}

.box {
  animation: move 2s steps(4, end) infinite;
}`},
				{ID: "easing-visualizer", Title: "Easing Visualizer", Subtitle: "Interactive timing function explorer", Icon: "📊"},
				{ID: "challenge-typewriter", Title: "Challenge: Typewriter Effect", Subtitle: "Build a typing animation with steps()", Icon: "🎮",
					PreviewHTML: FragmentType,
					DefaultCSS: `/* Reveal the text one character at a time */
.typewriter {
  color: #f0f6fc;
  font-family: monospace;
  font-size: 20px;
  overflow: hidden;
  white-space: nowrap;
  border-right: 2px solid #06b6d4;
}`},
			},
		},
		{
			ID: "performance", Title: "Performance", Icon: "⚡",
			Lessons: []Lesson{
				{ID: "layout-paint-composite", Title: "Layout, Paint, Composite", Subtitle: "How browsers render animations", Icon: "🖥️"},
				{ID: "will-change", Title: "will-change & GPU", Subtitle: "Optimizing with hardware acceleration", Icon: "🚀",
					DefaultCSS: `.box {
  will-change: transform;
  transition: transform 0.3s ease-out;
}

.box:hover {
  transform: translateY(-30px);
}`},
				{ID: "safe-properties", Title: "Safe Properties", Subtitle: "transform & opacity for smooth animations", Icon: "✅",
					DefaultCSS: `.box {
  transition: transform 0.3s ease-out, opacity 0.3s ease-out;
}

.box:hover {
  transform: scale(1.1);
  opacity: 0.6;
}`},
				{ID: "reduced-motion", Title: "prefers-reduced-motion", Subtitle: "Accessible animation practices", Icon: "♿",
					DefaultCSS: `@keyframes spin {
  to { transform: rotate(360deg); }
}

.box {
  animation: spin 2s linear infinite;
}

@media (prefers-reduced-motion: reduce) {
  .box {
    animation: none;
  }
}`},
				{ID: "challenge-optimize", Title: "Challenge: Fix Janky Animation", Subtitle: "Optimize a poorly performing animation", Icon: "🎮",
					DefaultCSS: `/* This animation moves the box with left, which triggers layout.
   Rewrite it so only compositor-friendly properties change. */
.box {
  position: relative;
  left: 0;
  transition: left 0.3s ease-out;
}

.box:hover {
  left: 100px;
}`},
			},
		},
		{
			ID: "scroll-animations", Title: "Scroll Animations", Icon: "📜",
			Lessons: []Lesson{
				{ID: "animation-timeline-intro", Title: "Introduction to animation-timeline", Subtitle: "The future of scroll-driven animations", Icon: "🆕"},
				{ID: "scroll-function", Title: "scroll() Function", Subtitle: "Linking animations to scroll position", Icon: "📏",
					PreviewHTML: FragmentScroll,
					DefaultCSS: `@keyframes spin {
  to { transform: rotate(360deg); }
}

.reveal {
  animation: spin linear;
  animation-timeline: scroll();
}`},
				{ID: "view-function", Title: "view() Function", Subtitle: "Animations based on element visibility", Icon: "👁️",
					PreviewHTML: FragmentScroll,
					DefaultCSS: `@keyframes appear {
  from { opacity: 0; transform: scale(0.5); }
  to { opacity: 1; transform: scale(1); }
}

.reveal {
  animation: appear linear both;
  animation-timeline: view();
}`},
				{ID: "scroll-view-timeline", Title: "scroll-timeline & view-timeline", Subtitle: "Named timelines for complex animations", Icon: "🎯",
					PreviewHTML: FragmentScroll,
					DefaultCSS: `.scroller {
  scroll-timeline: --page block;
}

@keyframes slide {
  to { transform: translateX(120px); }
}

.reveal {
  animation: slide linear;
  animation-timeline: --page;
}`},
				{ID: "animation-range", Title: "animation-range", Subtitle: "entry, exit, contain, cover", Icon: "📐",
					PreviewHTML: FragmentScroll,
					DefaultCSS: `@keyframes appear {
  from { opacity: 0; }
  to { opacity: 1; }
}

.reveal {
  animation: appear linear both;
  animation-timeline: view();
  animation-range: entry 0% entry 100%;
}`},
				{ID: "challenge-parallax", Title: "Challenge: Parallax Effect", Subtitle: "Build a scroll-based parallax", Icon: "🎮",
					PreviewHTML: FragmentLayers,
					DefaultCSS: `/* Move the back layer slower than the front while scrolling */
.layer.back {
}`},
				{ID: "challenge-reveal", Title: "Challenge: Reveal on Scroll", Subtitle: "Animate elements as they enter view", Icon: "🎮",
					PreviewHTML: FragmentScroll,
					DefaultCSS: `/* Fade and slide the box in as it scrolls into view */
.reveal {
}`},
			},
		},
		{
			ID: "advanced", Title: "Advanced", Icon: "🧪",
			Lessons: []Lesson{
				{ID: "motion-path", Title: "Motion Path", Subtitle: "offset-path & offset-distance", Icon: "🛤️",
					PreviewHTML: FragmentCircle,
					DefaultCSS: `@keyframes follow {
  to { offset-distance: 100%; }
}

.circle {
  offset-path: path("M 0 0 C 60 -80, 120 80, 180 0");
  animation: follow 2s ease-in-out infinite alternate;
}`},
				{ID: "3d-perspective", Title: "3D & Perspective", Subtitle: "Creating depth with CSS", Icon: "🎲",
					DefaultCSS: `body {
  perspective: 600px;
}

.box {
  transition: transform 0.6s ease-out;
}

.box:hover {
  transform: rotateY(60deg) rotateX(20deg);
}`},
				{ID: "clip-path-animations", Title: "clip-path Animations", Subtitle: "Animating clipping masks", Icon: "✂️",
					DefaultCSS: `.box {
  clip-path: circle(30% at 50% 50%);
  transition: clip-path 0.5s ease-out;
}

.box:hover {
  clip-path: circle(75% at 50% 50%);
}`},
				{ID: "filter-animations", Title: "Filter Animations", Subtitle: "blur, brightness, and more", Icon: "🌈",
					DefaultCSS: `.box {
  filter: blur(4px) grayscale(1);
  transition: filter 0.4s ease-out;
}

.box:hover {
  filter: blur(0) grayscale(0) brightness(1.2);
}`},
				{ID: "variable-fonts", Title: "Variable Font Animations", Subtitle: "Animating font-weight & font-stretch", Icon: "🔤",
					PreviewHTML: FragmentText,
					DefaultCSS: `.title {
  color: #f0f6fc;
  font-size: 48px;
  font-weight: 200;
  transition: font-weight 0.4s ease-out;
}

.title:hover {
  font-weight: 900;
}`},
				{ID: "discrete-animations", Title: "Discrete Property Animations", Subtitle: "Animating display & visibility (NEW)", Icon: "🆕",
					DefaultCSS: `.box {
  transition: opacity 0.4s, display 0.4s allow-discrete;
}

body:hover .box {
  opacity: 0;
  display: none;
}`},
				{ID: "view-transitions", Title: "View Transitions API", Subtitle: "Page transitions made easy", Icon: "🔀"},
			},
		},
		{
			ID: "bonus", Title: "Bonus Topics", Icon: "🌶️",
			Lessons: []Lesson{
				{ID: "houdini-property", Title: "CSS Houdini @property", Subtitle: "Custom animatable properties", Icon: "🎩",
					DefaultCSS: `@property --angle {
  syntax: "<angle>";
  inherits: false;
  initial-value: 0deg;
}

@keyframes turn {
  to { --angle: 360deg; }
}

.box {
  background: conic-gradient(from var(--angle), #06b6d4, #8b5cf6, #06b6d4);
  animation: turn 3s linear infinite;
}`},
				{ID: "color-interpolation", Title: "Color Interpolation", Subtitle: "oklch & color-mix animations", Icon: "🎨",
					DefaultCSS: `.box {
  background: oklch(70% 0.15 200);
  transition: background 0.6s ease;
}

.box:hover {
  background: color-mix(in oklch, #06b6d4, #f97316);
}`},
				{ID: "orchestration", Title: "Animation Orchestration", Subtitle: "Stagger, sequence, and choreography", Icon: "🎼",
					PreviewHTML: FragmentLoader,
					DefaultCSS: `@keyframes rise {
  from { transform: translateY(20px); opacity: 0; }
  to { transform: translateY(0); opacity: 1; }
}

.loader .dot {
  animation: rise 0.6s ease-out both infinite alternate;
}

.loader .dot:nth-child(2) { animation-delay: 0.15s; }
.loader .dot:nth-child(3) { animation-delay: 0.3s; }`},
				{ID: "spring-physics", Title: "Spring Physics in CSS", Subtitle: "Approximating natural motion", Icon: "🌀",
					DefaultCSS: `.box {
  transition: transform 1s linear(0, 1.2 30%, 0.95 50%, 1.02 70%, 1);
}

.box:hover {
  transform: translateX(120px);
}`},
			},
		},
	}
}
