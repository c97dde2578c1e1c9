// pkg/registry/fallback_code.go
package registry

// Canned game code served by the fallback synthesizer. Each script relies
// only on the pre-loaded PIXI global and the injected GAME_DATA document,
// and mounts its canvas on the game-container element.

const quizFallbackCode = `// Quiz game
const app = new PIXI.Application({ width: 800, height: 600, backgroundColor: 0x1099bb });
document.getElementById('game-container').appendChild(app.view);

const questions = GAME_DATA.questions;
let currentQuestion = 0;
let score = 0;

const questionText = new PIXI.Text('', {
    fontFamily: 'Arial', fontSize: 24, fill: 0xffffff,
    wordWrap: true, wordWrapWidth: 700
});
questionText.position.set(50, 50);
app.stage.addChild(questionText);

const scoreText = new PIXI.Text('Score: 0', { fontFamily: 'Arial', fontSize: 20, fill: 0xffffff });
scoreText.position.set(650, 20);
app.stage.addChild(scoreText);

const buttons = [];
for (let i = 0; i < 4; i++) {
    const container = new PIXI.Container();
    container.position.set(50, 200 + i * 80);
    const bg = new PIXI.Graphics();
    bg.beginFill(0x3498db);
    bg.drawRoundedRect(0, 0, 700, 60, 10);
    bg.endFill();
    bg.interactive = true;
    bg.buttonMode = true;
    const text = new PIXI.Text('', { fontFamily: 'Arial', fontSize: 18, fill: 0xffffff });
    text.anchor.set(0.5);
    text.position.set(350, 30);
    container.addChild(bg);
    container.addChild(text);
    buttons.push({ container, bg, text });
    app.stage.addChild(container);
}

function loadQuestion() {
    if (currentQuestion >= questions.length) {
        endGame();
        return;
    }
    const q = questions[currentQuestion];
    questionText.text = 'Q' + (currentQuestion + 1) + ': ' + q.question;
    q.answers.forEach((answer, index) => {
        const button = buttons[index];
        button.text.text = answer;
        button.bg.removeAllListeners();
        button.bg.on('pointerdown', () => answerQuestion(index));
    });
}

function answerQuestion(answerIndex) {
    const q = questions[currentQuestion];
    if (answerIndex === q.correctIndex) {
        score += 10;
        scoreText.text = 'Score: ' + score;
    }
    currentQuestion++;
    loadQuestion();
}

function endGame() {
    questionText.text = 'Game Over! Final Score: ' + score + '/' + (questions.length * 10);
    buttons.forEach(button => { button.container.visible = false; });
}

loadQuestion();
`

const platformerFallbackCode = `// Platformer game
const app = new PIXI.Application({ width: 800, height: 600, backgroundColor: 0x87ceeb });
document.getElementById('game-container').appendChild(app.view);

const level = GAME_DATA.levels[0];
const platforms = [];
level.platforms.forEach(p => {
    const g = new PIXI.Graphics();
    g.beginFill(0x228b22);
    g.drawRect(0, 0, p.width, p.height);
    g.endFill();
    g.position.set(p.x, p.y);
    app.stage.addChild(g);
    platforms.push(p);
});

const player = new PIXI.Graphics();
player.beginFill(0xff4500);
player.drawRect(-15, -30, 30, 30);
player.endFill();
player.position.set(60, 520);
app.stage.addChild(player);

let vy = 0;
let onGround = false;
const keys = {};
window.addEventListener('keydown', e => { keys[e.key] = true; });
window.addEventListener('keyup', e => { keys[e.key] = false; });

app.ticker.add(delta => {
    if (keys['ArrowRight']) player.x += 4 * delta;
    if (keys['ArrowLeft']) player.x -= 4 * delta;
    if (keys['ArrowUp'] && onGround) { vy = -12; onGround = false; }

    vy += 0.6 * delta;
    player.y += vy * delta;

    onGround = false;
    platforms.forEach(p => {
        if (player.x > p.x && player.x < p.x + p.width &&
            player.y >= p.y && player.y <= p.y + p.height && vy >= 0) {
            player.y = p.y;
            vy = 0;
            onGround = true;
        }
    });

    if (player.x < 15) player.x = 15;
    if (player.x > 785) player.x = 785;
    if (player.y > 700) { player.position.set(60, 520); vy = 0; }
});
`

const puzzleFallbackCode = `// Tile matching puzzle
const app = new PIXI.Application({ width: 800, height: 600, backgroundColor: 0x2c3e50 });
document.getElementById('game-container').appendChild(app.view);

const size = GAME_DATA.gridSize;
const colors = GAME_DATA.colors.map(c => parseInt(c.replace('#', ''), 16));
const tileSize = 100;
const offsetX = (800 - size * tileSize) / 2;
const offsetY = (600 - size * tileSize) / 2;

let score = 0;
const scoreText = new PIXI.Text('Matches: 0', { fontFamily: 'Arial', fontSize: 20, fill: 0xffffff });
scoreText.position.set(20, 20);
app.stage.addChild(scoreText);

let selected = null;
const grid = [];

for (let row = 0; row < size; row++) {
    grid.push([]);
    for (let col = 0; col < size; col++) {
        const colorIndex = Math.floor(Math.random() * colors.length);
        const tile = new PIXI.Graphics();
        tile.beginFill(colors[colorIndex]);
        tile.drawRoundedRect(0, 0, tileSize - 8, tileSize - 8, 8);
        tile.endFill();
        tile.position.set(offsetX + col * tileSize, offsetY + row * tileSize);
        tile.interactive = true;
        tile.buttonMode = true;
        const cell = { tile, colorIndex, row, col };
        tile.on('pointerdown', () => selectTile(cell));
        grid[row].push(cell);
        app.stage.addChild(tile);
    }
}

function selectTile(cell) {
    if (!selected) {
        selected = cell;
        cell.tile.alpha = 0.5;
        return;
    }
    const adjacent = Math.abs(selected.row - cell.row) + Math.abs(selected.col - cell.col) === 1;
    if (adjacent && selected.colorIndex === cell.colorIndex) {
        score++;
        scoreText.text = 'Matches: ' + score;
        recolor(selected);
        recolor(cell);
    }
    selected.tile.alpha = 1;
    selected = null;
}

function recolor(cell) {
    cell.colorIndex = Math.floor(Math.random() * colors.length);
    cell.tile.clear();
    cell.tile.beginFill(colors[cell.colorIndex]);
    cell.tile.drawRoundedRect(0, 0, tileSize - 8, tileSize - 8, 8);
    cell.tile.endFill();
}
`

const arcadeFallbackCode = `// Arcade clicker
const app = new PIXI.Application({ width: 800, height: 600, backgroundColor: 0x191970 });
document.getElementById('game-container').appendChild(app.view);

let timeLeft = GAME_DATA.duration;
const targetCount = GAME_DATA.targetCount || 3;
let score = 0;
let running = true;

const scoreText = new PIXI.Text('Score: 0', { fontFamily: 'Arial', fontSize: 24, fill: 0xffffff });
scoreText.position.set(20, 20);
app.stage.addChild(scoreText);

const timerText = new PIXI.Text('Time: ' + timeLeft, { fontFamily: 'Arial', fontSize: 24, fill: 0xffffff });
timerText.position.set(650, 20);
app.stage.addChild(timerText);

function spawnTarget() {
    const target = new PIXI.Graphics();
    target.beginFill(0xffd700);
    target.drawCircle(0, 0, 25);
    target.endFill();
    target.position.set(60 + Math.random() * 680, 100 + Math.random() * 440);
    target.interactive = true;
    target.buttonMode = true;
    target.on('pointerdown', () => {
        if (!running) return;
        score++;
        scoreText.text = 'Score: ' + score;
        target.position.set(60 + Math.random() * 680, 100 + Math.random() * 440);
    });
    app.stage.addChild(target);
}

for (let i = 0; i < targetCount; i++) spawnTarget();

let elapsed = 0;
app.ticker.add(delta => {
    if (!running) return;
    elapsed += delta / 60;
    if (elapsed >= 1) {
        elapsed = 0;
        timeLeft--;
        timerText.text = 'Time: ' + timeLeft;
        if (timeLeft <= 0) {
            running = false;
            timerText.text = 'Done! Score: ' + score;
        }
    }
});
`

const genericFallbackCode = `// Bouncing shapes toy
const app = new PIXI.Application({ width: 800, height: 600, backgroundColor: 0x222244 });
document.getElementById('game-container').appendChild(app.view);

const shapes = [];
for (let i = 0; i < 8; i++) {
    const g = new PIXI.Graphics();
    g.beginFill(0x100000 * (i + 1) + 0x4488aa);
    g.drawCircle(0, 0, 15 + i * 3);
    g.endFill();
    g.position.set(50 + Math.random() * 700, 50 + Math.random() * 500);
    g.vx = 2 + Math.random() * 3;
    g.vy = 2 + Math.random() * 3;
    app.stage.addChild(g);
    shapes.push(g);
}

app.ticker.add(delta => {
    shapes.forEach(g => {
        g.x += g.vx * delta;
        g.y += g.vy * delta;
        if (g.x < 20 || g.x > 780) g.vx = -g.vx;
        if (g.y < 20 || g.y > 580) g.vy = -g.vy;
    });
});
`
