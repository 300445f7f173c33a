package render

// Шаблон страницы квиза. Страница автономна: вопросы и логика встроены,
// состояние прохождения хранится в localStorage. Поля вопросов могут
// содержать маркер <br> — он вставляется в разметку как есть.
const quizTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Name}}</title>
<style>
  * { box-sizing: border-box; margin: 0; padding: 0; font-family: "Segoe UI", Arial, sans-serif; }
  body { background: #f4f6fb; color: #222; }
  header { background: #273c75; color: #fff; padding: 14px 20px; display: flex; justify-content: space-between; align-items: center; }
  header .timer { font-size: 1.2em; font-weight: bold; }
  .container { display: flex; max-width: 1100px; margin: 20px auto; gap: 20px; padding: 0 12px; }
  .main { flex: 3; }
  .sidebar { flex: 1; }
  .card { background: #fff; border-radius: 8px; padding: 20px; box-shadow: 0 1px 4px rgba(0,0,0,.12); margin-bottom: 16px; }
  .question-text { font-size: 1.1em; margin-bottom: 16px; }
  .option { display: block; border: 1px solid #dcdde1; border-radius: 6px; padding: 10px 14px; margin-bottom: 8px; cursor: pointer; }
  .option.selected { border-color: #273c75; background: #eef1fb; }
  .palette { display: grid; grid-template-columns: repeat(5, 1fr); gap: 6px; }
  .palette button { padding: 8px 0; border: 1px solid #dcdde1; border-radius: 4px; background: #fff; cursor: pointer; }
  .palette button.answered { background: #44bd32; color: #fff; }
  .palette button.current { border-color: #273c75; border-width: 2px; }
  .nav { display: flex; justify-content: space-between; margin-top: 12px; }
  button.action { background: #273c75; color: #fff; border: none; border-radius: 6px; padding: 10px 18px; cursor: pointer; }
  button.action.secondary { background: #7f8fa6; }
  #result, #rank { display: none; }
  .stat { display: flex; justify-content: space-between; padding: 6px 0; border-bottom: 1px solid #f1f2f6; }
  .muted { color: #7f8fa6; font-size: .9em; }
</style>
</head>
<body>
<header>
  <div>
    <div>{{.Name}}</div>
    <div class="muted">{{.QuestionCount}} questions &middot; +{{.Marks}} / &minus;{{.Negative}} &middot; by {{.Creator}}</div>
  </div>
  <div class="timer" id="timer">--:--</div>
</header>

<div class="container">
  <div class="main">
    <div class="card" id="quiz-card">
      <div class="question-text" id="question-text"></div>
      <div id="options"></div>
      <div class="nav">
        <button class="action secondary" id="prev">Prev</button>
        <button class="action secondary" id="clear">Clear</button>
        <button class="action" id="next">Next</button>
      </div>
    </div>
    <div class="card" id="result">
      <h3>Result</h3>
      <div class="stat"><span>Score</span><strong id="r-score"></strong></div>
      <div class="stat"><span>Correct</span><span id="r-correct"></span></div>
      <div class="stat"><span>Wrong</span><span id="r-wrong"></span></div>
      <div class="stat"><span>Unattempted</span><span id="r-unattempted"></span></div>
      <div class="stat"><span>Time taken</span><span id="r-time"></span></div>
      <div id="rank">
        <div class="stat"><span>Rank</span><strong id="r-rank"></strong></div>
        <div class="stat"><span>Percentile</span><span id="r-percentile"></span></div>
      </div>
      <div id="solutions"></div>
    </div>
  </div>
  <div class="sidebar">
    <div class="card">
      <div class="palette" id="palette"></div>
      <button class="action" id="submit" style="width:100%;margin-top:12px;">Submit</button>
    </div>
  </div>
</div>

<script>
var QUIZ_ID = {{.QuizID}};
var API_BASE = {{.APIBase}};
var TIME_LIMIT = {{.TimeMinutes}} * 60;
var MARKS = parseFloat({{.Marks}}) || 1;
var NEGATIVE = parseFloat({{.Negative}}) || 0;
var questions = {{.QuestionsJSON}};

var stateKey = "quizgen-" + QUIZ_ID;
var state = loadState() || { answers: {}, started: Date.now(), finished: false };
var current = 0;

function loadState() {
  try { return JSON.parse(localStorage.getItem(stateKey)); } catch (e) { return null; }
}
function saveState() {
  try { localStorage.setItem(stateKey, JSON.stringify(state)); } catch (e) {}
}
function deviceId() {
  var id = localStorage.getItem("quizgen-device");
  if (!id) {
    id = "d-" + Math.random().toString(36).slice(2) + Date.now().toString(36);
    localStorage.setItem("quizgen-device", id);
  }
  return id;
}

function optionsOf(q) {
  var opts = [];
  for (var i = 1; i <= 5; i++) {
    var text = q["option_" + i];
    if (text) opts.push({ ordinal: String(i), text: text });
  }
  return opts;
}

function renderQuestion() {
  var q = questions[current];
  document.getElementById("question-text").innerHTML = (current + 1) + ". " + q.question;
  var box = document.getElementById("options");
  box.innerHTML = "";
  optionsOf(q).forEach(function (opt) {
    var el = document.createElement("div");
    el.className = "option" + (state.answers[q.id] === opt.ordinal ? " selected" : "");
    el.innerHTML = opt.text;
    el.onclick = function () {
      if (state.finished) return;
      state.answers[q.id] = opt.ordinal;
      saveState();
      renderQuestion();
      renderPalette();
    };
    box.appendChild(el);
  });
  renderPalette();
}

function renderPalette() {
  var pal = document.getElementById("palette");
  pal.innerHTML = "";
  questions.forEach(function (q, i) {
    var b = document.createElement("button");
    b.textContent = i + 1;
    if (state.answers[q.id]) b.className = "answered";
    if (i === current) b.className += " current";
    b.onclick = function () { current = i; renderQuestion(); };
    pal.appendChild(b);
  });
}

document.getElementById("prev").onclick = function () { if (current > 0) { current--; renderQuestion(); } };
document.getElementById("next").onclick = function () { if (current < questions.length - 1) { current++; renderQuestion(); } };
document.getElementById("clear").onclick = function () {
  if (state.finished) return;
  delete state.answers[questions[current].id];
  saveState(); renderQuestion();
};

var timerId = setInterval(tick, 1000);
function tick() {
  var left = TIME_LIMIT - Math.floor((Date.now() - state.started) / 1000);
  if (left <= 0) { finish(); return; }
  var m = Math.floor(left / 60), s = left % 60;
  document.getElementById("timer").textContent = m + ":" + (s < 10 ? "0" : "") + s;
}

document.getElementById("submit").onclick = finish;

function finish() {
  if (state.finished) return;
  state.finished = true;
  clearInterval(timerId);
  var correct = 0, wrong = 0, unattempted = 0;
  questions.forEach(function (q) {
    var picked = state.answers[q.id];
    if (!picked) { unattempted++; }
    else if (picked === q.answer) { correct++; }
    else { wrong++; }
  });
  var score = correct * MARKS - wrong * NEGATIVE;
  var timeTaken = Math.min(TIME_LIMIT, Math.floor((Date.now() - state.started) / 1000));
  state.result = { score: score, correct: correct, wrong: wrong, unattempted: unattempted, timeTaken: timeTaken };
  saveState();

  document.getElementById("quiz-card").style.display = "none";
  document.getElementById("result").style.display = "block";
  document.getElementById("r-score").textContent = score + " / " + questions.length * MARKS;
  document.getElementById("r-correct").textContent = correct;
  document.getElementById("r-wrong").textContent = wrong;
  document.getElementById("r-unattempted").textContent = unattempted;
  document.getElementById("r-time").textContent = timeTaken + "s";
  renderSolutions();
  submitAttempt(score, correct, wrong, unattempted, timeTaken);
}

function renderSolutions() {
  var box = document.getElementById("solutions");
  var html = "<h3 style='margin-top:14px;'>Solutions</h3>";
  questions.forEach(function (q, i) {
    var picked = state.answers[q.id];
    html += "<div class='card'><div class='question-text'>" + (i + 1) + ". " + q.question + "</div>";
    optionsOf(q).forEach(function (opt) {
      var cls = "option";
      if (opt.ordinal === q.answer) cls += " selected";
      html += "<div class='" + cls + "'>" + opt.text + (opt.ordinal === picked ? " &larr; your answer" : "") + "</div>";
    });
    if (q.solution_text) html += "<div class='muted'>" + q.solution_text + "</div>";
    html += "</div>";
  });
  box.innerHTML = html;
}

function submitAttempt(score, correct, wrong, unattempted, timeTaken) {
  if (!API_BASE) return;
  var attempt = {
    quizId: QUIZ_ID,
    deviceId: deviceId(),
    score: score,
    total: questions.length * MARKS,
    correct: correct,
    wrong: wrong,
    unattempted: unattempted,
    timeTaken: timeTaken,
    submittedAt: Date.now()
  };
  fetch(API_BASE + "/attempts", {
    method: "POST",
    headers: { "Content-Type": "application/json" },
    body: JSON.stringify(attempt)
  }).then(function (resp) { return resp.json(); }).then(function (r) {
    if (typeof r.rank !== "number") return;
    document.getElementById("rank").style.display = "block";
    document.getElementById("r-rank").textContent = r.rank + " of " + r.total;
    document.getElementById("r-percentile").textContent = r.percentile + "%";
  }).catch(function () {});
}

if (state.finished && state.result) {
  var r = state.result;
  clearInterval(timerId);
  document.getElementById("quiz-card").style.display = "none";
  document.getElementById("result").style.display = "block";
  document.getElementById("r-score").textContent = r.score + " / " + questions.length * MARKS;
  document.getElementById("r-correct").textContent = r.correct;
  document.getElementById("r-wrong").textContent = r.wrong;
  document.getElementById("r-unattempted").textContent = r.unattempted;
  document.getElementById("r-time").textContent = r.timeTaken + "s";
  renderSolutions();
} else {
  renderQuestion();
  tick();
}
</script>
</body>
</html>
`
