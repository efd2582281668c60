package tarot

// Deck is the fixed 78-card deck every spread draws from. Order matters:
// the deterministic shuffle indexes into this slice, so entries must never
// be reordered or removed.
var Deck = []Card{
	{
		ID:              "major-00",
		Name:            "The Fool",
		Arcana:          ArcanaMajor,
		Suit:            "major",
		Number:          0,
		UprightMeaning:  "New beginnings, curiosity, and a leap of faith toward the unknown.",
		ReversedMeaning: "Recklessness, hesitation, or ignoring the consequences of impulsive choices.",
	},
	{
		ID:              "major-01",
		Name:            "The Magician",
		Arcana:          ArcanaMajor,
		Suit:            "major",
		Number:          1,
		UprightMeaning:  "Focused willpower and skillful manifestation of ideas into reality.",
		ReversedMeaning: "Misused talents, scattered focus, or manipulation without integrity.",
	},
	{
		ID:              "major-02",
		Name:            "The High Priestess",
		Arcana:          ArcanaMajor,
		Suit:            "major",
		Number:          2,
		UprightMeaning:  "Inner knowing, intuition, and patient trust in emerging truths.",
		ReversedMeaning: "Secrets withheld, self-doubt, or refusing to listen to inner guidance.",
	},
	{
		ID:              "major-03",
		Name:            "The Empress",
		Arcana:          ArcanaMajor,
		Suit:            "major",
		Number:          3,
		UprightMeaning:  "Abundant creativity, care, and nurturing connections.",
		ReversedMeaning: "Neglect, creative blocks, or overextending without reciprocity.",
	},
	{
		ID:              "major-04",
		Name:            "The Emperor",
		Arcana:          ArcanaMajor,
		Suit:            "major",
		Number:          4,
		UprightMeaning:  "Structure, leadership, and confident stewardship of resources.",
		ReversedMeaning: "Rigidity, control issues, or an erosion of healthy boundaries.",
	},
	{
		ID:              "major-05",
		Name:            "The Hierophant",
		Arcana:          ArcanaMajor,
		Suit:            "major",
		Number:          5,
		UprightMeaning:  "Tradition, shared wisdom, and trusted mentorship.",
		ReversedMeaning: "Stagnation, dogma, or questioning inherited beliefs.",
	},
	{
		ID:              "major-06",
		Name:            "The Lovers",
		Arcana:          ArcanaMajor,
		Suit:            "major",
		Number:          6,
		UprightMeaning:  "Aligned choices, heartfelt commitment, and mutual understanding.",
		ReversedMeaning: "Misalignment, difficult decisions, or values clash.",
	},
	{
		ID:              "major-07",
		Name:            "The Chariot",
		Arcana:          ArcanaMajor,
		Suit:            "major",
		Number:          7,
		UprightMeaning:  "Determined progress and disciplined focus in motion.",
		ReversedMeaning: "Lack of direction, burnout, or pushing ahead without consent.",
	},
	{
		ID:              "major-08",
		Name:            "Strength",
		Arcana:          ArcanaMajor,
		Suit:            "major",
		Number:          8,
		UprightMeaning:  "Inner resilience, compassion, and quiet confidence.",
		ReversedMeaning: "Self-doubt, impatience, or suppressing vulnerable truths.",
	},
	{
		ID:              "major-09",
		Name:            "The Hermit",
		Arcana:          ArcanaMajor,
		Suit:            "major",
		Number:          9,
		UprightMeaning:  "Reflective solitude, insight, and guiding others through earned wisdom.",
		ReversedMeaning: "Isolation, avoidance, or refusing to share what you have learned.",
	},
	{
		ID:              "major-10",
		Name:            "Wheel of Fortune",
		Arcana:          ArcanaMajor,
		Suit:            "major",
		Number:          10,
		UprightMeaning:  "Cycles turning, timely opportunities, and embracing change.",
		ReversedMeaning: "Resistance to change, unlucky timing, or repeating old patterns.",
	},
	{
		ID:              "major-11",
		Name:            "Justice",
		Arcana:          ArcanaMajor,
		Suit:            "major",
		Number:          11,
		UprightMeaning:  "Fairness, accountability, and measured decisions.",
		ReversedMeaning: "Bias, imbalance, or avoiding responsibility.",
	},
	{
		ID:              "major-12",
		Name:            "The Hanged One",
		Arcana:          ArcanaMajor,
		Suit:            "major",
		Number:          12,
		UprightMeaning:  "Perspective shifts, surrender, and patient observation.",
		ReversedMeaning: "Stagnation, martyrdom, or refusing to release control.",
	},
	{
		ID:              "major-13",
		Name:            "Death",
		Arcana:          ArcanaMajor,
		Suit:            "major",
		Number:          13,
		UprightMeaning:  "Transformation, closure, and embracing necessary endings.",
		ReversedMeaning: "Clinging to the past, stalled transitions, or fear of change.",
	},
	{
		ID:              "major-14",
		Name:            "Temperance",
		Arcana:          ArcanaMajor,
		Suit:            "major",
		Number:          14,
		UprightMeaning:  "Integration, balance, and gentle calibration.",
		ReversedMeaning: "Impatience, extremes, or lack of healthy moderation.",
	},
	{
		ID:              "major-15",
		Name:            "The Devil",
		Arcana:          ArcanaMajor,
		Suit:            "major",
		Number:          15,
		UprightMeaning:  "Confronting attachments, embodied desire, and radical honesty.",
		ReversedMeaning: "Breaking free, shame loops, or hidden motivations.",
	},
	{
		ID:              "major-16",
		Name:            "The Tower",
		Arcana:          ArcanaMajor,
		Suit:            "major",
		Number:          16,
		UprightMeaning:  "Sudden revelation, upheaval, and clearing what is unstable.",
		ReversedMeaning: "Prolonged tension, denial, or fear of necessary change.",
	},
	{
		ID:              "major-17",
		Name:            "The Star",
		Arcana:          ArcanaMajor,
		Suit:            "major",
		Number:          17,
		UprightMeaning:  "Hope, renewal, and gentle guidance after upheaval.",
		ReversedMeaning: "Doubt, dimmed optimism, or withholding care from yourself.",
	},
	{
		ID:              "major-18",
		Name:            "The Moon",
		Arcana:          ArcanaMajor,
		Suit:            "major",
		Number:          18,
		UprightMeaning:  "Dreams, intuition, and navigating liminal spaces.",
		ReversedMeaning: "Confusion, anxiety, or misreading emotional signals.",
	},
	{
		ID:              "major-19",
		Name:            "The Sun",
		Arcana:          ArcanaMajor,
		Suit:            "major",
		Number:          19,
		UprightMeaning:  "Joy, clarity, and shared warmth.",
		ReversedMeaning: "Ego, burnout, or overlooking others' needs.",
	},
	{
		ID:              "major-20",
		Name:            "Judgement",
		Arcana:          ArcanaMajor,
		Suit:            "major",
		Number:          20,
		UprightMeaning:  "Awakening, reconciliation, and meaningful review.",
		ReversedMeaning: "Self-criticism, stalled closure, or ignoring an inner calling.",
	},
	{
		ID:              "major-21",
		Name:            "The World",
		Arcana:          ArcanaMajor,
		Suit:            "major",
		Number:          21,
		UprightMeaning:  "Completion, integration, and expansive perspective.",
		ReversedMeaning: "Loose ends, delayed milestones, or reluctance to move on.",
	},
	{
		ID:              "wands-01",
		Name:            "Ace of Wands",
		Arcana:          ArcanaMinor,
		Suit:            "wands",
		Number:          1,
		UprightMeaning:  "Spark of inspiration, bold initiative, and creative fuel.",
		ReversedMeaning: "False starts, waning enthusiasm, or misdirected energy.",
	},
	{
		ID:              "wands-02",
		Name:            "Two of Wands",
		Arcana:          ArcanaMinor,
		Suit:            "wands",
		Number:          2,
		UprightMeaning:  "Strategic planning, personal vision, and choosing a path.",
		ReversedMeaning: "Indecision, fear of expansion, or neglecting follow-through.",
	},
	{
		ID:              "wands-03",
		Name:            "Three of Wands",
		Arcana:          ArcanaMinor,
		Suit:            "wands",
		Number:          3,
		UprightMeaning:  "Momentum, results in transit, and collaborative support.",
		ReversedMeaning: "Delays, limited perspective, or hesitant delegation.",
	},
	{
		ID:              "wands-04",
		Name:            "Four of Wands",
		Arcana:          ArcanaMinor,
		Suit:            "wands",
		Number:          4,
		UprightMeaning:  "Celebration, community anchoring, and milestones shared.",
		ReversedMeaning: "Disconnection, cancelled plans, or withholding recognition.",
	},
	{
		ID:              "wands-05",
		Name:            "Five of Wands",
		Arcana:          ArcanaMinor,
		Suit:            "wands",
		Number:          5,
		UprightMeaning:  "Playful competition, testing ideas, and lively debate.",
		ReversedMeaning: "Chaos, ego clashes, or draining conflict.",
	},
	{
		ID:              "wands-06",
		Name:            "Six of Wands",
		Arcana:          ArcanaMinor,
		Suit:            "wands",
		Number:          6,
		UprightMeaning:  "Recognition, shared wins, and confident visibility.",
		ReversedMeaning: "Imposter feelings, hollow praise, or seeking validation.",
	},
	{
		ID:              "wands-07",
		Name:            "Seven of Wands",
		Arcana:          ArcanaMinor,
		Suit:            "wands",
		Number:          7,
		UprightMeaning:  "Defending progress, asserting boundaries, and resilience.",
		ReversedMeaning: "Overwhelm, defensiveness, or fighting unwinnable battles.",
	},
	{
		ID:              "wands-08",
		Name:            "Eight of Wands",
		Arcana:          ArcanaMinor,
		Suit:            "wands",
		Number:          8,
		UprightMeaning:  "Swift movement, decisive communication, and rapid change.",
		ReversedMeaning: "Mixed messages, stalled travel, or acting without context.",
	},
	{
		ID:              "wands-09",
		Name:            "Nine of Wands",
		Arcana:          ArcanaMinor,
		Suit:            "wands",
		Number:          9,
		UprightMeaning:  "Last-mile stamina, cautious optimism, and hard-earned resilience.",
		ReversedMeaning: "Exhaustion, hyper-vigilance, or refusing to rest.",
	},
	{
		ID:              "wands-10",
		Name:            "Ten of Wands",
		Arcana:          ArcanaMinor,
		Suit:            "wands",
		Number:          10,
		UprightMeaning:  "Heavy responsibilities, dedicated effort, and carrying the load.",
		ReversedMeaning: "Burnout, poor delegation, or burdens that need release.",
	},
	{
		ID:              "wands-11",
		Name:            "Page of Wands",
		Arcana:          ArcanaMinor,
		Suit:            "wands",
		Number:          11,
		UprightMeaning:  "Curious exploration, playful enthusiasm, and learning through action.",
		ReversedMeaning: "Restlessness, immaturity, or chasing novelty without grounding.",
	},
	{
		ID:              "wands-12",
		Name:            "Knight of Wands",
		Arcana:          ArcanaMinor,
		Suit:            "wands",
		Number:          12,
		UprightMeaning:  "Adventurous drive, charisma, and bold pursuit.",
		ReversedMeaning: "Impulsive detours, inconsistency, or overpromising.",
	},
	{
		ID:              "wands-13",
		Name:            "Queen of Wands",
		Arcana:          ArcanaMinor,
		Suit:            "wands",
		Number:          13,
		UprightMeaning:  "Magnetic leadership, warmth, and expressive authenticity.",
		ReversedMeaning: "Jealousy, overshadowing others, or self-doubt in visibility.",
	},
	{
		ID:              "wands-14",
		Name:            "King of Wands",
		Arcana:          ArcanaMinor,
		Suit:            "wands",
		Number:          14,
		UprightMeaning:  "Visionary command, entrepreneurial spirit, and courageous stewardship.",
		ReversedMeaning: "Domineering leadership, impatience, or burnout from overextension.",
	},
	{
		ID:              "cups-01",
		Name:            "Ace of Cups",
		Arcana:          ArcanaMinor,
		Suit:            "cups",
		Number:          1,
		UprightMeaning:  "Overflowing emotion, compassionate starts, and heartfelt invitations.",
		ReversedMeaning: "Emotional blockages, unexpressed feelings, or a delayed opening.",
	},
	{
		ID:              "cups-02",
		Name:            "Two of Cups",
		Arcana:          ArcanaMinor,
		Suit:            "cups",
		Number:          2,
		UprightMeaning:  "Reciprocal partnership, shared sentiment, and mutual respect.",
		ReversedMeaning: "Misalignment, relationship strain, or uneven exchange.",
	},
	{
		ID:              "cups-03",
		Name:            "Three of Cups",
		Arcana:          ArcanaMinor,
		Suit:            "cups",
		Number:          3,
		UprightMeaning:  "Community celebration, joy, and creative collaboration.",
		ReversedMeaning: "Overindulgence, gossip, or feeling left out.",
	},
	{
		ID:              "cups-04",
		Name:            "Four of Cups",
		Arcana:          ArcanaMinor,
		Suit:            "cups",
		Number:          4,
		UprightMeaning:  "Contemplation, emotional recalibration, and assessing invitations.",
		ReversedMeaning: "Apathy, disengagement, or missing opportunities.",
	},
	{
		ID:              "cups-05",
		Name:            "Five of Cups",
		Arcana:          ArcanaMinor,
		Suit:            "cups",
		Number:          5,
		UprightMeaning:  "Acknowledging loss, feeling grief, and processing disappointment.",
		ReversedMeaning: "Lingering sorrow, difficulty moving on, or focusing on scarcity.",
	},
	{
		ID:              "cups-06",
		Name:            "Six of Cups",
		Arcana:          ArcanaMinor,
		Suit:            "cups",
		Number:          6,
		UprightMeaning:  "Sweet nostalgia, shared memories, and generous kindness.",
		ReversedMeaning: "Idealizing the past, stuck patterns, or reluctance to grow.",
	},
	{
		ID:              "cups-07",
		Name:            "Seven of Cups",
		Arcana:          ArcanaMinor,
		Suit:            "cups",
		Number:          7,
		UprightMeaning:  "Dreaming big, weighing options, and imaginative exploration.",
		ReversedMeaning: "Analysis paralysis, illusions, or escapist fantasies.",
	},
	{
		ID:              "cups-08",
		Name:            "Eight of Cups",
		Arcana:          ArcanaMinor,
		Suit:            "cups",
		Number:          8,
		UprightMeaning:  "Soulful departure, honoring growth, and walking toward authenticity.",
		ReversedMeaning: "Avoidance, premature exits, or fear of commitment.",
	},
	{
		ID:              "cups-09",
		Name:            "Nine of Cups",
		Arcana:          ArcanaMinor,
		Suit:            "cups",
		Number:          9,
		UprightMeaning:  "Contentment, wishes granted, and appreciation of the present.",
		ReversedMeaning: "Smugness, shallow comfort, or overindulgence.",
	},
	{
		ID:              "cups-10",
		Name:            "Ten of Cups",
		Arcana:          ArcanaMinor,
		Suit:            "cups",
		Number:          10,
		UprightMeaning:  "Collective joy, harmonious relationships, and shared fulfillment.",
		ReversedMeaning: "Fractured harmony, unmet expectations, or tension at home.",
	},
	{
		ID:              "cups-11",
		Name:            "Page of Cups",
		Arcana:          ArcanaMinor,
		Suit:            "cups",
		Number:          11,
		UprightMeaning:  "Fresh feelings, creative musings, and intuitive curiosity.",
		ReversedMeaning: "Emotional immaturity, moodiness, or artistic self-doubt.",
	},
	{
		ID:              "cups-12",
		Name:            "Knight of Cups",
		Arcana:          ArcanaMinor,
		Suit:            "cups",
		Number:          12,
		UprightMeaning:  "Romantic pursuit, heartfelt expression, and spiritual quests.",
		ReversedMeaning: "Idealism unchecked, inconsistency, or running from reality.",
	},
	{
		ID:              "cups-13",
		Name:            "Queen of Cups",
		Arcana:          ArcanaMinor,
		Suit:            "cups",
		Number:          13,
		UprightMeaning:  "Empathy, emotional maturity, and compassionate leadership.",
		ReversedMeaning: "Emotional overwhelm, boundary challenges, or caretaking fatigue.",
	},
	{
		ID:              "cups-14",
		Name:            "King of Cups",
		Arcana:          ArcanaMinor,
		Suit:            "cups",
		Number:          14,
		UprightMeaning:  "Steady emotional intelligence, diplomacy, and wise counsel.",
		ReversedMeaning: "Emotional detachment, manipulative charm, or avoidance.",
	},
	{
		ID:              "swords-01",
		Name:            "Ace of Swords",
		Arcana:          ArcanaMinor,
		Suit:            "swords",
		Number:          1,
		UprightMeaning:  "Clarity, decisive insight, and truthful communication.",
		ReversedMeaning: "Fog, misinformation, or weaponized words.",
	},
	{
		ID:              "swords-02",
		Name:            "Two of Swords",
		Arcana:          ArcanaMinor,
		Suit:            "swords",
		Number:          2,
		UprightMeaning:  "Balanced consideration, stalemate, and pausing before choice.",
		ReversedMeaning: "Indecision, blocked emotions, or delaying important decisions.",
	},
	{
		ID:              "swords-03",
		Name:            "Three of Swords",
		Arcana:          ArcanaMinor,
		Suit:            "swords",
		Number:          3,
		UprightMeaning:  "Heartache processed through honesty and release.",
		ReversedMeaning: "Lingering pain, unspoken truths, or unnecessary self-blame.",
	},
	{
		ID:              "swords-04",
		Name:            "Four of Swords",
		Arcana:          ArcanaMinor,
		Suit:            "swords",
		Number:          4,
		UprightMeaning:  "Rest, mental reset, and strategic recovery.",
		ReversedMeaning: "Restlessness, burnout, or avoidance of healing.",
	},
	{
		ID:              "swords-05",
		Name:            "Five of Swords",
		Arcana:          ArcanaMinor,
		Suit:            "swords",
		Number:          5,
		UprightMeaning:  "Tension, hollow victory, and considering the cost of winning.",
		ReversedMeaning: "Making amends, lingering resentment, or walking away.",
	},
	{
		ID:              "swords-06",
		Name:            "Six of Swords",
		Arcana:          ArcanaMinor,
		Suit:            "swords",
		Number:          6,
		UprightMeaning:  "Transition, thoughtful departure, and mental relief.",
		ReversedMeaning: "Difficulty releasing, carrying baggage, or reluctant change.",
	},
	{
		ID:              "swords-07",
		Name:            "Seven of Swords",
		Arcana:          ArcanaMinor,
		Suit:            "swords",
		Number:          7,
		UprightMeaning:  "Strategy, discretion, and acting with cunning.",
		ReversedMeaning: "Exposure, guilt, or the need to realign with integrity.",
	},
	{
		ID:              "swords-08",
		Name:            "Eight of Swords",
		Arcana:          ArcanaMinor,
		Suit:            "swords",
		Number:          8,
		UprightMeaning:  "Perceived limitation, anxiety, and needing fresh perspective.",
		ReversedMeaning: "Liberation, loosening restrictions, or reclaiming agency.",
	},
	{
		ID:              "swords-09",
		Name:            "Nine of Swords",
		Arcana:          ArcanaMinor,
		Suit:            "swords",
		Number:          9,
		UprightMeaning:  "Night-time worry, rumination, and mental overload.",
		ReversedMeaning: "Relief, confronting fears, or support arriving.",
	},
	{
		ID:              "swords-10",
		Name:            "Ten of Swords",
		Arcana:          ArcanaMinor,
		Suit:            "swords",
		Number:          10,
		UprightMeaning:  "Closure, finality, and accepting what has ended.",
		ReversedMeaning: "Lingering pain, resisting endings, or dramatizing a setback.",
	},
	{
		ID:              "swords-11",
		Name:            "Page of Swords",
		Arcana:          ArcanaMinor,
		Suit:            "swords",
		Number:          11,
		UprightMeaning:  "Curious questions, alert intellect, and agile communication.",
		ReversedMeaning: "Overthinking, gossip, or scattered focus.",
	},
	{
		ID:              "swords-12",
		Name:            "Knight of Swords",
		Arcana:          ArcanaMinor,
		Suit:            "swords",
		Number:          12,
		UprightMeaning:  "Swift action, assertive debate, and mission-driven movement.",
		ReversedMeaning: "Impulsivity, tunnel vision, or reckless messaging.",
	},
	{
		ID:              "swords-13",
		Name:            "Queen of Swords",
		Arcana:          ArcanaMinor,
		Suit:            "swords",
		Number:          13,
		UprightMeaning:  "Clear boundaries, perceptive judgment, and candid truth.",
		ReversedMeaning: "Coldness, cynicism, or over-editing your vulnerability.",
	},
	{
		ID:              "swords-14",
		Name:            "King of Swords",
		Arcana:          ArcanaMinor,
		Suit:            "swords",
		Number:          14,
		UprightMeaning:  "Strategic leadership, ethical logic, and impartial clarity.",
		ReversedMeaning: "Authoritarian tone, detached rulings, or weaponizing intellect.",
	},
	{
		ID:              "pentacles-01",
		Name:            "Ace of Pentacles",
		Arcana:          ArcanaMinor,
		Suit:            "pentacles",
		Number:          1,
		UprightMeaning:  "Fresh opportunity, grounded prosperity, and practical support.",
		ReversedMeaning: "Missed chances, scarcity mindset, or delayed payoff.",
	},
	{
		ID:              "pentacles-02",
		Name:            "Two of Pentacles",
		Arcana:          ArcanaMinor,
		Suit:            "pentacles",
		Number:          2,
		UprightMeaning:  "Skillful juggling, adaptable flow, and resource balancing.",
		ReversedMeaning: "Overcommitment, disorganization, or shaky priorities.",
	},
	{
		ID:              "pentacles-03",
		Name:            "Three of Pentacles",
		Arcana:          ArcanaMinor,
		Suit:            "pentacles",
		Number:          3,
		UprightMeaning:  "Collaboration, craftsmanship, and constructive feedback.",
		ReversedMeaning: "Lack of teamwork, mismatched expectations, or shortcuts.",
	},
	{
		ID:              "pentacles-04",
		Name:            "Four of Pentacles",
		Arcana:          ArcanaMinor,
		Suit:            "pentacles",
		Number:          4,
		UprightMeaning:  "Stability, mindful saving, and healthy boundaries with resources.",
		ReversedMeaning: "Scarcity fear, hoarding, or inflexibility.",
	},
	{
		ID:              "pentacles-05",
		Name:            "Five of Pentacles",
		Arcana:          ArcanaMinor,
		Suit:            "pentacles",
		Number:          5,
		UprightMeaning:  "Hard times, seeking support, and mutual aid.",
		ReversedMeaning: "Recovery, new opportunities, or reframing scarcity.",
	},
	{
		ID:              "pentacles-06",
		Name:            "Six of Pentacles",
		Arcana:          ArcanaMinor,
		Suit:            "pentacles",
		Number:          6,
		UprightMeaning:  "Generosity, reciprocal giving, and resource flow.",
		ReversedMeaning: "Strings attached, imbalance, or unclear expectations.",
	},
	{
		ID:              "pentacles-07",
		Name:            "Seven of Pentacles",
		Arcana:          ArcanaMinor,
		Suit:            "pentacles",
		Number:          7,
		UprightMeaning:  "Patience, long-range vision, and incremental progress.",
		ReversedMeaning: "Restlessness, poor returns, or need for course correction.",
	},
	{
		ID:              "pentacles-08",
		Name:            "Eight of Pentacles",
		Arcana:          ArcanaMinor,
		Suit:            "pentacles",
		Number:          8,
		UprightMeaning:  "Skill-building, diligence, and conscious practice.",
		ReversedMeaning: "Monotony, perfectionism, or underpaid labor.",
	},
	{
		ID:              "pentacles-09",
		Name:            "Nine of Pentacles",
		Arcana:          ArcanaMinor,
		Suit:            "pentacles",
		Number:          9,
		UprightMeaning:  "Self-sufficiency, crafted comfort, and savoring achievements.",
		ReversedMeaning: "Overwork, isolation, or uneasy independence.",
	},
	{
		ID:              "pentacles-10",
		Name:            "Ten of Pentacles",
		Arcana:          ArcanaMinor,
		Suit:            "pentacles",
		Number:          10,
		UprightMeaning:  "Legacy, shared resources, and multi-generational support.",
		ReversedMeaning: "Financial tension, inheritance conflict, or short-term thinking.",
	},
	{
		ID:              "pentacles-11",
		Name:            "Page of Pentacles",
		Arcana:          ArcanaMinor,
		Suit:            "pentacles",
		Number:          11,
		UprightMeaning:  "Curious study, tangible planning, and grounded curiosity.",
		ReversedMeaning: "Lack of focus, procrastination, or undervaluing growth.",
	},
	{
		ID:              "pentacles-12",
		Name:            "Knight of Pentacles",
		Arcana:          ArcanaMinor,
		Suit:            "pentacles",
		Number:          12,
		UprightMeaning:  "Steady progress, reliability, and methodical effort.",
		ReversedMeaning: "Stagnation, stubborn routines, or resistance to change.",
	},
	{
		ID:              "pentacles-13",
		Name:            "Queen of Pentacles",
		Arcana:          ArcanaMinor,
		Suit:            "pentacles",
		Number:          13,
		UprightMeaning:  "Nurturing abundance, practical care, and resourceful wisdom.",
		ReversedMeaning: "Self-neglect, overgiving, or work-life imbalance.",
	},
	{
		ID:              "pentacles-14",
		Name:            "King of Pentacles",
		Arcana:          ArcanaMinor,
		Suit:            "pentacles",
		Number:          14,
		UprightMeaning:  "Grounded leadership, prosperity stewardship, and long-term vision.",
		ReversedMeaning: "Materialism, rigidity, or fear of calculated risk.",
	},
}
