package chapters

import "github.com/abhisek/umlstudy/internal/i18n"

var catalogue = []Chapter{
	{
		ID:     "introduction",
		Number: 1,
		Title:  i18n.Text{EN: "What is UML?", FR: "Qu'est-ce que l'UML ?"},
		Summary: i18n.Text{
			EN: "UML is a standard visual language for specifying, designing and documenting software systems.",
			FR: "L'UML est un langage visuel normalisé pour spécifier, concevoir et documenter des systèmes logiciels.",
		},
		Diagram: `            UML 2.x diagrams
       ┌────────────┴────────────┐
  Structural                 Behavioral
  ├ Class                    ├ Use case
  ├ Object                   ├ Activity
  ├ Component                ├ State machine
  ├ Deployment               └ Interaction
  └ Package                     ├ Sequence
                                └ Communication`,
		Sections: []Section{
			{
				Heading: i18n.Text{EN: "A unified language", FR: "Un langage unifié"},
				Body: i18n.Text{
					EN: "UML (Unified Modeling Language) grew out of the methods of Booch, Rumbaugh and Jacobson in the 1990s. The Object Management Group (OMG) has maintained it as a standard since 1997. UML is a notation, not a method: it tells you how to draw a model, not which process to follow.",
					FR: "L'UML (Unified Modeling Language) est né dans les années 1990 de la fusion des méthodes de Booch, Rumbaugh et Jacobson. L'Object Management Group (OMG) le maintient comme norme depuis 1997. L'UML est une notation, pas une méthode : il dit comment dessiner un modèle, pas quel processus suivre.",
				},
			},
			{
				Heading: i18n.Text{EN: "Two families of diagrams", FR: "Deux familles de diagrammes"},
				Body: i18n.Text{
					EN: "Structural diagrams show the static parts of a system: classes, objects, components and where they run. Behavioral diagrams show what the system does: use cases, activities, state changes and interactions between participants over time.",
					FR: "Les diagrammes structurels montrent les parties statiques d'un système : classes, objets, composants et lieux d'exécution. Les diagrammes comportementaux montrent ce que fait le système : cas d'utilisation, activités, changements d'état et interactions entre participants dans le temps.",
				},
			},
			{
				Heading: i18n.Text{EN: "Why model?", FR: "Pourquoi modéliser ?"},
				Body: i18n.Text{
					EN: "A model is a simplification that lets a team reason about a system before and while building it. Good diagrams leave out detail on purpose: pick the diagram that answers the question at hand.",
					FR: "Un modèle est une simplification qui permet à une équipe de raisonner sur un système avant et pendant sa construction. Un bon diagramme omet volontairement des détails : choisissez celui qui répond à la question posée.",
				},
			},
		},
	},
	{
		ID:     "class-diagrams",
		Number: 2,
		Title:  i18n.Text{EN: "Class diagrams", FR: "Diagrammes de classes"},
		Summary: i18n.Text{
			EN: "Class diagrams describe the types in a system, their attributes and operations, and the relationships between them.",
			FR: "Les diagrammes de classes décrivent les types d'un système, leurs attributs et opérations, et les relations qui les lient.",
		},
		Diagram: `  ┌──────────────────┐          ┌──────────────┐
  │      Order       │ 1     0..*│  OrderLine   │
  ├──────────────────┤◆─────────├──────────────┤
  │ - id: int        │          │ - qty: int   │
  │ - date: Date     │          └──────────────┘
  ├──────────────────┤
  │ + total(): Money │
  └────────△─────────┘
           │
  ┌────────┴─────────┐
  │   OnlineOrder    │
  └──────────────────┘`,
		Sections: []Section{
			{
				Heading: i18n.Text{EN: "Classes", FR: "Classes"},
				Body: i18n.Text{
					EN: "A class is a box with three compartments: name, attributes and operations. Visibility prefixes each member: + public, - private, # protected, ~ package. Attributes are written name: Type and operations name(params): ReturnType.",
					FR: "Une classe est un rectangle à trois compartiments : nom, attributs et opérations. La visibilité précède chaque membre : + public, - privé, # protégé, ~ paquetage. Les attributs s'écrivent nom : Type et les opérations nom(paramètres) : TypeRetour.",
				},
			},
			{
				Heading: i18n.Text{EN: "Relationships", FR: "Relations"},
				Body: i18n.Text{
					EN: "Association is a solid line between classes. Aggregation adds a hollow diamond on the whole; composition a filled diamond, meaning the parts live and die with the whole. Generalization is a solid line with a hollow triangle towards the parent; realization is the dashed version. Dependency is a dashed arrow.",
					FR: "L'association est un trait plein entre classes. L'agrégation ajoute un losange vide du côté du tout ; la composition un losange plein : les parties naissent et meurent avec le tout. La généralisation est un trait plein avec un triangle vide vers le parent ; la réalisation en est la version pointillée. La dépendance est une flèche pointillée.",
				},
			},
			{
				Heading: i18n.Text{EN: "Multiplicity", FR: "Multiplicité"},
				Body: i18n.Text{
					EN: "Multiplicities at each end of an association say how many instances take part: 1, 0..1, 0..* (or *), 1..*. Read them from the opposite class: one Order has zero or more OrderLines.",
					FR: "Les multiplicités aux extrémités d'une association indiquent combien d'instances participent : 1, 0..1, 0..* (ou *), 1..*. On les lit depuis la classe opposée : une Commande possède zéro ou plusieurs LignesDeCommande.",
				},
			},
		},
	},
	{
		ID:     "use-case-diagrams",
		Number: 3,
		Title:  i18n.Text{EN: "Use case diagrams", FR: "Diagrammes de cas d'utilisation"},
		Summary: i18n.Text{
			EN: "Use case diagrams capture what a system offers to the actors around it.",
			FR: "Les diagrammes de cas d'utilisation décrivent ce qu'un système offre aux acteurs qui l'entourent.",
		},
		Diagram: `           ┌──────── Library system ────────┐
    O      │   ( Borrow book ) ─ ─<<include>>─ ─> ( Check membership )
   /|\ ────┼──       ^                         │
   / \     │         ¦ <<extend>>              │
  Member   │   ( Pay late fee )                │
           └────────────────────────────────────┘`,
		Sections: []Section{
			{
				Heading: i18n.Text{EN: "Actors and use cases", FR: "Acteurs et cas d'utilisation"},
				Body: i18n.Text{
					EN: "An actor is a role played by someone or something outside the system. A use case is an ellipse naming a goal the actor reaches through the system. The system boundary is a rectangle around the use cases.",
					FR: "Un acteur est un rôle joué par une personne ou une chose extérieure au système. Un cas d'utilisation est une ellipse nommant un objectif que l'acteur atteint grâce au système. La frontière du système est un rectangle entourant les cas d'utilisation.",
				},
			},
			{
				Heading: i18n.Text{EN: "Include and extend", FR: "Include et extend"},
				Body: i18n.Text{
					EN: "<<include>> points from a use case to behavior it always reuses. <<extend>> points from optional behavior to the use case it may extend, under a condition at an extension point.",
					FR: "<<include>> va d'un cas d'utilisation vers un comportement qu'il réutilise toujours. <<extend>> va d'un comportement optionnel vers le cas qu'il peut étendre, sous condition, en un point d'extension.",
				},
			},
		},
	},
	{
		ID:     "sequence-diagrams",
		Number: 4,
		Title:  i18n.Text{EN: "Sequence diagrams", FR: "Diagrammes de séquence"},
		Summary: i18n.Text{
			EN: "Sequence diagrams show how participants exchange messages over time.",
			FR: "Les diagrammes de séquence montrent comment les participants échangent des messages dans le temps.",
		},
		Diagram: `  :Client         :Server          :Database
     │                │                 │
     │  request()     │                 │
     │───────────────>█                 │
     │                █   query()       │
     │                █────────────────>█
     │                █<─ ─ ─ rows ─ ─ ─│
     │<─ ─ response ─ ┆                 │
     │                │                 │`,
		Sections: []Section{
			{
				Heading: i18n.Text{EN: "Lifelines and messages", FR: "Lignes de vie et messages"},
				Body: i18n.Text{
					EN: "Each participant has a lifeline, a dashed vertical line; time flows downwards. Synchronous calls use a filled arrowhead, asynchronous messages an open one, and replies a dashed line. Activation bars show when a participant is busy.",
					FR: "Chaque participant a une ligne de vie, trait vertical pointillé ; le temps s'écoule vers le bas. Les appels synchrones ont une flèche pleine, les messages asynchrones une flèche ouverte et les réponses un trait pointillé. Les barres d'activation montrent quand un participant travaille.",
				},
			},
			{
				Heading: i18n.Text{EN: "Combined fragments", FR: "Fragments combinés"},
				Body: i18n.Text{
					EN: "Frames labelled with an operator add control flow: alt for alternatives, opt for an optional part, loop for repetition, par for parallel regions. Guards in brackets decide which operand runs.",
					FR: "Des cadres étiquetés par un opérateur ajoutent du contrôle : alt pour des alternatives, opt pour une partie optionnelle, loop pour une répétition, par pour des régions parallèles. Les gardes entre crochets décident quel opérande s'exécute.",
				},
			},
		},
	},
	{
		ID:     "activity-diagrams",
		Number: 5,
		Title:  i18n.Text{EN: "Activity diagrams", FR: "Diagrammes d'activité"},
		Summary: i18n.Text{
			EN: "Activity diagrams model workflows: the order of actions, choices and concurrency.",
			FR: "Les diagrammes d'activité modélisent des flux : l'ordre des actions, les choix et la concurrence.",
		},
		Diagram: `         ●
         │
  ( Receive order )
         │
         ◇──[out of stock]──> ( Notify customer ) ──> ◉
         │[in stock]
     ════╪════  fork
     │        │
 ( Pack )  ( Bill )
     │        │
     ════╪════  join
         │
         ◉`,
		Sections: []Section{
			{
				Heading: i18n.Text{EN: "Actions and control nodes", FR: "Actions et nœuds de contrôle"},
				Body: i18n.Text{
					EN: "Rounded rectangles are actions. A filled circle starts the flow and a ringed circle ends it. Diamonds are decision and merge nodes; guards on outgoing edges must be mutually exclusive.",
					FR: "Les rectangles arrondis sont des actions. Un disque plein démarre le flux et un disque cerclé le termine. Les losanges sont des nœuds de décision et de fusion ; les gardes des arcs sortants doivent s'exclure mutuellement.",
				},
			},
			{
				Heading: i18n.Text{EN: "Concurrency and partitions", FR: "Concurrence et partitions"},
				Body: i18n.Text{
					EN: "A fork bar splits one flow into concurrent flows and a join bar waits for all of them. Partitions (swimlanes) group actions by who performs them.",
					FR: "Une barre de bifurcation sépare un flux en flux concurrents et une barre de jonction les attend tous. Les partitions (couloirs) regroupent les actions selon qui les réalise.",
				},
			},
		},
	},
	{
		ID:     "state-machine-diagrams",
		Number: 6,
		Title:  i18n.Text{EN: "State machine diagrams", FR: "Diagrammes d'états-transitions"},
		Summary: i18n.Text{
			EN: "State machines describe how one object reacts to events depending on its current state.",
			FR: "Les machines à états décrivent comment un objet réagit aux événements selon son état courant.",
		},
		Diagram: `   ●
   │
   v
 ┌──────────┐  pay [amount ok] / ship()  ┌──────────┐
 │ Pending  │───────────────────────────>│   Paid   │
 └──────────┘                            └──────────┘
      │ cancel                                │ deliver
      v                                       v
 ┌──────────┐                            ┌──────────┐
 │ Canceled │──────────> ◉ <─────────────│Delivered │
 └──────────┘                            └──────────┘`,
		Sections: []Section{
			{
				Heading: i18n.Text{EN: "States and transitions", FR: "États et transitions"},
				Body: i18n.Text{
					EN: "States are rounded rectangles. Transitions are arrows labelled event [guard] / effect: the event triggers the transition, the guard must hold, and the effect runs as it fires.",
					FR: "Les états sont des rectangles arrondis. Les transitions sont des flèches étiquetées événement [garde] / effet : l'événement déclenche la transition, la garde doit être vraie et l'effet s'exécute au franchissement.",
				},
			},
			{
				Heading: i18n.Text{EN: "Pseudostates", FR: "Pseudo-états"},
				Body: i18n.Text{
					EN: "The initial pseudostate is a filled circle; the final state is a filled circle in a ring. Choice, junction and history pseudostates refine how transitions are routed.",
					FR: "Le pseudo-état initial est un disque plein ; l'état final est un disque plein entouré d'un cercle. Les pseudo-états de choix, de jonction et d'historique précisent le routage des transitions.",
				},
			},
		},
	},
	{
		ID:     "component-deployment",
		Number: 7,
		Title:  i18n.Text{EN: "Component and deployment diagrams", FR: "Diagrammes de composants et de déploiement"},
		Summary: i18n.Text{
			EN: "Component diagrams show replaceable parts and their interfaces; deployment diagrams show where they run.",
			FR: "Les diagrammes de composants montrent les parties remplaçables et leurs interfaces ; les diagrammes de déploiement montrent où elles s'exécutent.",
		},
		Diagram: `  ┌─────────────────┐  Payments  ┌─────────────────┐
  │ <<component>>   │────O  (────│ <<component>>   │
  │ PaymentService  │            │ Checkout        │
  └─────────────────┘            └─────────────────┘

  ╔═══════ <<device>> AppServer ═══════╗
  ║  checkout.jar   payment.jar        ║
  ╚════════════════╤═══════════════════╝
                   │ TCP/IP
  ╔════════ <<device>> DbServer ═══════╗
  ╚════════════════════════════════════╝`,
		Sections: []Section{
			{
				Heading: i18n.Text{EN: "Components and interfaces", FR: "Composants et interfaces"},
				Body: i18n.Text{
					EN: "A component is a modular, replaceable part of a system. A ball (lollipop) marks a provided interface and a socket a required one; connecting them wires the components together.",
					FR: "Un composant est une partie modulaire et remplaçable d'un système. Une boule (sucette) marque une interface fournie et une demi-lune une interface requise ; les relier assemble les composants.",
				},
			},
			{
				Heading: i18n.Text{EN: "Nodes and artifacts", FR: "Nœuds et artefacts"},
				Body: i18n.Text{
					EN: "Nodes are three-dimensional boxes for devices or execution environments. Artifacts such as jar files or binaries are deployed onto nodes, and communication paths connect the nodes.",
					FR: "Les nœuds sont des boîtes en trois dimensions représentant des appareils ou environnements d'exécution. Les artefacts, fichiers jar ou binaires, y sont déployés, et des chemins de communication relient les nœuds.",
				},
			},
		},
	},
}
