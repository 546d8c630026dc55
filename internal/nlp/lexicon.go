package nlp

// valence holds the polarity lexicon: word -> rating on a roughly
// [-4, 4] scale, the convention used by VADER-style scorers. The set
// is trimmed to vocabulary that actually shows up in customer reviews.
var valence = map[string]float64{
	// positive
	"amazing": 2.8, "appreciate": 1.7, "awesome": 3.1, "beautiful": 2.9,
	"best": 3.2, "better": 1.9, "brilliant": 2.8, "charming": 2.1,
	"clean": 1.7, "comfortable": 2.0, "convenient": 1.6, "courteous": 2.0,
	"delicious": 2.7, "delight": 2.5, "delighted": 2.9, "easy": 1.4,
	"efficient": 1.8, "enjoy": 2.2, "enjoyable": 2.4, "enjoyed": 2.3,
	"excellent": 3.2, "exceptional": 2.9, "fabulous": 2.9, "fantastic": 3.0,
	"fast": 1.3, "favorite": 2.1, "fine": 0.8, "friendly": 2.2,
	"fresh": 1.3, "fun": 2.3, "glad": 2.0, "good": 1.9,
	"great": 3.1, "happy": 2.7, "helpful": 2.1, "impressed": 2.2,
	"impressive": 2.3, "incredible": 2.8, "like": 1.5, "liked": 1.7,
	"love": 3.2, "loved": 2.9, "lovely": 2.8, "nice": 1.8,
	"outstanding": 3.1, "perfect": 3.0, "phenomenal": 3.0, "pleasant": 2.1,
	"pleased": 2.3, "polite": 1.9, "professional": 1.7, "prompt": 1.5,
	"quick": 1.2, "recommend": 1.9, "recommended": 2.0, "reliable": 1.8,
	"satisfied": 2.0, "smooth": 1.3, "spotless": 2.4, "superb": 3.0,
	"terrific": 2.9, "thank": 1.7, "thanks": 1.9, "wonderful": 2.9,
	"worth": 1.4, "wow": 2.8,
	// negative
	"angry": -2.3, "annoyed": -1.9, "annoying": -2.0, "appalling": -2.9,
	"atrocious": -3.0, "avoid": -1.4, "awful": -3.0, "bad": -2.5,
	"broken": -1.9, "cold": -0.9, "complaint": -1.4, "crowded": -1.1,
	"damaged": -1.9, "dirty": -2.2, "disappointed": -2.3, "disappointing": -2.4,
	"disgusting": -3.1, "dreadful": -2.9, "expensive": -1.1, "fail": -2.2,
	"failed": -2.3, "failure": -2.4, "filthy": -2.8, "frustrated": -2.2,
	"frustrating": -2.3, "gross": -2.1, "hate": -3.0, "hated": -2.8,
	"horrible": -3.0, "horrid": -2.9, "ignored": -1.8, "incompetent": -2.4,
	"inedible": -2.6, "issue": -1.0, "late": -1.2, "lousy": -2.4,
	"mediocre": -1.5, "mess": -1.7, "messy": -1.7, "nasty": -2.6,
	"never": -1.3, "noisy": -1.4, "overpriced": -1.8, "poor": -2.3,
	"problem": -1.4, "refund": -0.9, "rude": -2.6, "sad": -1.9,
	"slow": -1.3, "stale": -1.8, "terrible": -3.0, "unacceptable": -2.5,
	"unclean": -2.1, "uncomfortable": -2.0, "unfriendly": -2.2, "unhappy": -2.2,
	"unhelpful": -2.1, "unpleasant": -2.2, "unprofessional": -2.3, "unreliable": -2.0,
	"upset": -2.0, "useless": -2.3, "waste": -2.2, "worst": -3.4,
	"worse": -2.6, "wrong": -1.8,
}

// negations flip the valence of a nearby lexicon word.
var negations = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "neither": {}, "nor": {},
	"nothing": {}, "nowhere": {}, "hardly": {}, "barely": {},
	"dont": {}, "don't": {}, "doesnt": {}, "doesn't": {},
	"didnt": {}, "didn't": {}, "isnt": {}, "isn't": {},
	"wasnt": {}, "wasn't": {}, "cant": {}, "can't": {},
	"couldnt": {}, "couldn't": {}, "wont": {}, "won't": {},
	"wouldnt": {}, "wouldn't": {}, "aint": {}, "ain't": {},
}

// boosters scale the valence of the word that follows them.
var boosters = map[string]float64{
	"absolutely": 0.293, "amazingly": 0.293, "completely": 0.293,
	"especially": 0.293, "extremely": 0.293, "highly": 0.293,
	"incredibly": 0.293, "really": 0.293, "remarkably": 0.293,
	"so": 0.293, "super": 0.293, "totally": 0.293, "truly": 0.293,
	"unbelievably": 0.293, "utterly": 0.293, "very": 0.293,
	"almost": -0.293, "barely": -0.293, "hardly": -0.293,
	"kind": -0.293, "kinda": -0.293, "marginally": -0.293,
	"slightly": -0.293, "somewhat": -0.293,
	"sort": -0.293, "sorta": -0.293,
}
