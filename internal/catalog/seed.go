// internal/catalog/seed.go
package catalog

import "gameforge/internal/models"

// Seed returns the built-in template catalog, without embeddings. The
// catalog builder (or startup indexing) fills those in.
func Seed() []models.Template {
	return []models.Template{
		{
			ID:          "quiz_01",
			Name:        "Multiple Choice Quiz",
			Description: "A quiz game where players answer multiple choice questions and collect points for correct answers",
			Type:        models.GameTypeQuiz,
			Tags:        []string{"quiz", "trivia", "questions", "education"},
			Code:        quizTemplateCode,
			DataSchemaHint: `game_data holds a "questions" array; each item has ` +
				`"question", an "answers" array and a zero-based "correctIndex".`,
		},
		{
			ID:          "platformer_01",
			Name:        "Side-Scrolling Platformer",
			Description: "A platformer where the player runs and jumps across platforms under simple gravity",
			Type:        models.GameTypePlatformer,
			Tags:        []string{"platformer", "jump", "gravity", "levels"},
			Code:        platformerTemplateCode,
			DataSchemaHint: `game_data holds a "levels" array; each level lists ` +
				`"platforms" with x, y, width and height.`,
		},
		{
			ID:          "puzzle_01",
			Name:        "Tile Matching Puzzle",
			Description: "A grid puzzle where players match adjacent tiles of the same color to score",
			Type:        models.GameTypePuzzle,
			Tags:        []string{"puzzle", "match", "tiles", "logic"},
			Code:        puzzleTemplateCode,
			DataSchemaHint: `game_data holds an integer "gridSize" and a "colors" ` +
				`array of hex color strings.`,
		},
		{
			ID:          "clicker_01",
			Name:        "Target Clicker",
			Description: "A fast-paced arcade clicker where players hit moving targets before the timer runs out",
			Type:        models.GameTypeArcade,
			Tags:        []string{"arcade", "clicker", "reaction", "timed"},
			Code:        clickerTemplateCode,
			DataSchemaHint: `game_data holds a numeric "duration" in seconds and an ` +
				`optional integer "targetCount".`,
		},
		{
			ID:          "flying_01",
			Name:        "Obstacle Flyer",
			Description: "An arcade game where the player keeps a ship airborne and dodges scrolling obstacles",
			Type:        models.GameTypeArcade,
			Tags:        []string{"arcade", "flying", "obstacles", "endless"},
			Code:        flyingTemplateCode,
			DataSchemaHint: `game_data holds a numeric "duration" and optional ` +
				`"obstacleSpeed" tuning.`,
		},
	}
}

const quizTemplateCode = `const app = new PIXI.Application({ width: 800, height: 600, backgroundColor: 0x1099bb });
document.getElementById('game-container').appendChild(app.view);

const questions = GAME_DATA.questions;
let current = 0;
let score = 0;

const questionText = new PIXI.Text('', { fontFamily: 'Arial', fontSize: 24, fill: 0xffffff, wordWrap: true, wordWrapWidth: 700 });
questionText.position.set(50, 50);
app.stage.addChild(questionText);

const answerButtons = [];
function showQuestion() {
    answerButtons.forEach(b => app.stage.removeChild(b));
    answerButtons.length = 0;
    if (current >= questions.length) {
        questionText.text = 'Final score: ' + score;
        return;
    }
    const q = questions[current];
    questionText.text = q.question;
    q.answers.forEach((answer, index) => {
        const label = new PIXI.Text(answer, { fontFamily: 'Arial', fontSize: 20, fill: 0xffff66 });
        label.position.set(80, 200 + index * 60);
        label.interactive = true;
        label.buttonMode = true;
        label.on('pointerdown', () => {
            if (index === q.correctIndex) score += 10;
            current++;
            showQuestion();
        });
        answerButtons.push(label);
        app.stage.addChild(label);
    });
}
showQuestion();
`

const platformerTemplateCode = `const app = new PIXI.Application({ width: 800, height: 600, backgroundColor: 0x87ceeb });
document.getElementById('game-container').appendChild(app.view);

const platforms = GAME_DATA.levels[0].platforms;
platforms.forEach(p => {
    const g = new PIXI.Graphics();
    g.beginFill(0x228b22);
    g.drawRect(p.x, p.y, p.width, p.height);
    g.endFill();
    app.stage.addChild(g);
});

const player = new PIXI.Graphics();
player.beginFill(0xff4500);
player.drawRect(-15, -30, 30, 30);
player.endFill();
player.position.set(60, 520);
app.stage.addChild(player);

let vy = 0;
let grounded = false;
const keys = {};
window.addEventListener('keydown', e => { keys[e.key] = true; });
window.addEventListener('keyup', e => { keys[e.key] = false; });

app.ticker.add(delta => {
    if (keys['ArrowRight']) player.x += 4 * delta;
    if (keys['ArrowLeft']) player.x -= 4 * delta;
    if (keys['ArrowUp'] && grounded) { vy = -12; grounded = false; }
    vy += 0.6 * delta;
    player.y += vy * delta;
    grounded = false;
    platforms.forEach(p => {
        if (player.x > p.x && player.x < p.x + p.width && player.y >= p.y && player.y <= p.y + p.height && vy >= 0) {
            player.y = p.y;
            vy = 0;
            grounded = true;
        }
    });
    if (player.y > 700) { player.position.set(60, 520); vy = 0; }
});
`

const puzzleTemplateCode = `const app = new PIXI.Application({ width: 800, height: 600, backgroundColor: 0x2c3e50 });
document.getElementById('game-container').appendChild(app.view);

const size = GAME_DATA.gridSize;
const colors = GAME_DATA.colors.map(c => parseInt(c.replace('#', ''), 16));
const tileSize = Math.min(500 / size, 100);
let selected = null;

for (let row = 0; row < size; row++) {
    for (let col = 0; col < size; col++) {
        const tile = new PIXI.Graphics();
        const colorIndex = Math.floor(Math.random() * colors.length);
        tile.beginFill(colors[colorIndex]);
        tile.drawRect(0, 0, tileSize - 6, tileSize - 6);
        tile.endFill();
        tile.position.set(150 + col * tileSize, 60 + row * tileSize);
        tile.colorIndex = colorIndex;
        tile.interactive = true;
        tile.buttonMode = true;
        tile.on('pointerdown', () => {
            if (!selected) { selected = tile; tile.alpha = 0.5; return; }
            if (selected !== tile && selected.colorIndex === tile.colorIndex) {
                selected.visible = false;
                tile.visible = false;
            }
            selected.alpha = 1;
            selected = null;
        });
        app.stage.addChild(tile);
    }
}
`

const clickerTemplateCode = `const app = new PIXI.Application({ width: 800, height: 600, backgroundColor: 0x191970 });
document.getElementById('game-container').appendChild(app.view);

let timeLeft = GAME_DATA.duration;
let score = 0;
const hud = new PIXI.Text('Score: 0  Time: ' + timeLeft, { fontFamily: 'Arial', fontSize: 24, fill: 0xffffff });
hud.position.set(20, 20);
app.stage.addChild(hud);

const target = new PIXI.Graphics();
target.beginFill(0xffd700);
target.drawCircle(0, 0, 25);
target.endFill();
target.position.set(400, 300);
target.interactive = true;
target.buttonMode = true;
target.on('pointerdown', () => {
    if (timeLeft <= 0) return;
    score++;
    target.position.set(60 + Math.random() * 680, 100 + Math.random() * 440);
});
app.stage.addChild(target);

let elapsed = 0;
app.ticker.add(delta => {
    if (timeLeft <= 0) return;
    elapsed += delta / 60;
    if (elapsed >= 1) {
        elapsed = 0;
        timeLeft--;
    }
    hud.text = timeLeft > 0 ? 'Score: ' + score + '  Time: ' + timeLeft : 'Done! Score: ' + score;
});
`

const flyingTemplateCode = `const app = new PIXI.Application({ width: 800, height: 600, backgroundColor: 0x101030 });
document.getElementById('game-container').appendChild(app.view);

const speed = GAME_DATA.obstacleSpeed || 4;
const ship = new PIXI.Graphics();
ship.beginFill(0x00ffcc);
ship.drawPolygon([0, -15, 12, 15, -12, 15]);
ship.endFill();
ship.position.set(120, 300);
app.stage.addChild(ship);

let vy = 0;
window.addEventListener('keydown', e => { if (e.key === ' ') vy = -6; });
app.view.addEventListener('pointerdown', () => { vy = -6; });

const obstacles = [];
function spawnObstacle() {
    const g = new PIXI.Graphics();
    g.beginFill(0xcc3344);
    g.drawRect(0, 0, 30, 120 + Math.random() * 160);
    g.endFill();
    g.position.set(820, Math.random() * 420);
    obstacles.push(g);
    app.stage.addChild(g);
}
let score = 0;
const hud = new PIXI.Text('0', { fontFamily: 'Arial', fontSize: 24, fill: 0xffffff });
hud.position.set(20, 20);
app.stage.addChild(hud);

let spawnTimer = 0;
app.ticker.add(delta => {
    vy += 0.3 * delta;
    ship.y += vy * delta;
    if (ship.y < 10 || ship.y > 590) ship.position.set(120, 300), vy = 0, score = 0;
    spawnTimer += delta;
    if (spawnTimer > 90) { spawnTimer = 0; spawnObstacle(); }
    obstacles.forEach(g => {
        g.x -= speed * delta;
        if (g.x < -40) { g.x = 820; score++; hud.text = String(score); }
        if (ship.x > g.x && ship.x < g.x + 30 && ship.y > g.y && ship.y < g.y + g.height) {
            ship.position.set(120, 300); vy = 0; score = 0; hud.text = '0';
        }
    });
});
`
