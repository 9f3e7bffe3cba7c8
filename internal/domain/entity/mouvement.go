package entity

import "time"

// Types de mouvement du grand livre matériel.
const (
	MouvementEntree         = "entree"          // réception en dépôt
	MouvementSortie         = "sortie"          // livraison vers un chantier
	MouvementRetour         = "retour"          // retour chantier -> dépôt
	MouvementHS             = "hs"              // déclaré hors service
	MouvementReparation     = "reparation"      // réparé, retour en stock disponible
	MouvementRebut          = "rebut"           // mise au rebut définitive
	MouvementLayherLocation = "layher_location" // mise en location chez Layher
	MouvementLayherRetour   = "layher_retour"   // retour de location Layher
)

// Sources / destinations virtuelles des mouvements.
const (
	LieuDepot    = "depot"
	LieuChantier = "chantier"
	LieuHS       = "hs"
	LieuLayher   = "layher"
	LieuRebut    = "rebut"
)

// TypeMouvementValide indique si le type fait partie des huit types connus.
func TypeMouvementValide(t string) bool {
	switch t {
	case MouvementEntree, MouvementSortie, MouvementRetour, MouvementHS,
		MouvementReparation, MouvementRebut, MouvementLayherLocation, MouvementLayherRetour:
		return true
	}
	return false
}

// Mouvement est une écriture du journal : un transfert de quantité entre deux
// lieux, immuable une fois persisté. Le journal est en append-only ; une
// correction se fait par un mouvement compensatoire, jamais par édition.
type Mouvement struct {
	ID             string
	ArticleID      string
	Type           string
	Quantite       int // strictement positif
	Source         string
	Destination    string
	ChantierID     string // renseigné pour sortie/retour/hs liés à un chantier
	ListeID        string // lien vers la liste de livraison/retour d'origine
	CleIdempotence string // clé optionnelle fournie par l'appelant pour dédupliquer les rejeux
	Commentaire    string
	CreatedAt      time.Time
}
